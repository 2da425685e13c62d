package message

type ChatType int

const (
	ChatTypeUnknown ChatType = iota
	ChatTypePrivate
	ChatTypeGroup
	ChatTypeSuperGroup
	ChatTypeChannel
)

func (ct ChatType) String() string {
	return [...]string{
		"unknown",
		"private",
		"group",
		"supergroup",
		"channel",
	}[ct]
}
