package welcome

import (
	"fmt"
	"github.com/awakari/bot-autoreply/model/message"
	"github.com/awakari/bot-autoreply/util"
	"html"
	"strconv"
	"strings"
)

const fmtGreeting = "Hi %s!"
const fmtMention = "<a href=\"%s\">%s</a>"

type Format struct {
	// Escape makes the user-controlled text safe for the Telegram HTML parse mode.
	Escape func(s string) string
}

func NewFormat() Format {
	return Format{
		Escape: html.EscapeString,
	}
}

// Greeting returns the HTML welcome text mentioning the sender.
func (f Format) Greeting(sender message.Sender) string {
	return fmt.Sprintf(fmtGreeting, f.Mention(sender))
}

func (f Format) Mention(sender message.Sender) string {
	return fmt.Sprintf(fmtMention, util.UserLink(sender.Id), f.Escape(DisplayName(sender)))
}

func DisplayName(sender message.Sender) (name string) {
	name = strings.TrimSpace(sender.FirstName + " " + sender.LastName)
	if name == "" {
		name = sender.Username
	}
	if name == "" {
		name = strconv.FormatInt(sender.Id, 10)
	}
	return
}
