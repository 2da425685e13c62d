package message

type Sender struct {
	Id        int64
	FirstName string
	LastName  string
	Username  string
}
