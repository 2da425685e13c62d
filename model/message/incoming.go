package message

// Incoming is the framework-independent view of an inbound message.
type Incoming struct {

	// SenderId is 0 when the message has no sender, e.g. a channel post.
	SenderId int64

	ChatId int64

	ChatType ChatType

	Text string

	// HasText is false for the messages without any text, e.g. stickers or media without a caption.
	HasText bool

	// BotMention is the bot handle, e.g. "@mybot". Empty when the bot has no username.
	BotMention string

	// Command is true when the text starts with a bot command.
	Command bool
}
