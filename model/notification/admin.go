package notification

// Admin is the error report delivered to the bot admin.
type Admin struct {
	RecipientId int64
	IncidentId  string
	Body        string
}
