package message

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/aripalo/go-delightful"
	"github.com/enescakir/emoji"
)

var message = delightful.New("cursor-reset")

// promptOutput receives prompt lines. Like survey prompts, they are printed
// in every output mode.
var promptOutput io.Writer = os.Stderr

var emojiEnabled = true

func SetSilentMode(flag bool) {
	message.SetSilentMode(flag)
}

func SetVerboseMode(flag bool) {
	message.SetVerboseMode(flag)
}

func SetEmojiMode(flag bool) {
	emojiEnabled = flag
	message.SetEmojiMode(flag)
}

func SetColorMode(flag bool) {
	message.SetColorMode(flag)
}

// Confirm asks a yes/no question. The default answer is No.
func Confirm(question string) (bool, error) {
	var answer bool
	prompt := &survey.Confirm{
		Message: question,
		Default: false,
	}

	err := survey.AskOne(prompt, &answer)
	if err != nil {
		return false, fmt.Errorf("failed to ask question: %w", err)
	}

	return answer, nil
}

// PromptLine prints an instruction the user has to act on, such as a
// keypress request. Silent mode does not hide it.
func PromptLine(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if emojiEnabled {
		text = fmt.Sprintf("%s %s", emoji.BackhandIndexPointingRight, text)
	}
	fmt.Fprintln(promptOutput, text)
}

func Debug(format string, args ...any) {
	message.Debugln(emoji.HammerAndWrench, fmt.Sprintf(format, args...))
}

func Warning(format string, args ...any) {
	message.Warningln(emoji.Warning, fmt.Sprintf(format, args...))
}

func Info(format string, args ...any) {
	message.Infoln(emoji.Information, fmt.Sprintf(format, args...))
}

func Step(format string, args ...any) {
	message.Infoln(emoji.MagnifyingGlassTiltedLeft, fmt.Sprintf(format, args...))
}

func Success(format string, args ...any) {
	message.Infoln(emoji.CheckMarkButton, fmt.Sprintf(format, args...))
}

func Error(format string, args ...any) {
	message.Failureln(emoji.CrossMark, fmt.Sprintf(format, args...))
}

// Title prints a section heading preceded by a horizontal ruler.
func Title(format string, args ...any) {
	message.HorizontalRuler()
	message.Titleln(emoji.PartyPopper, fmt.Sprintf(format, args...))
}

// Listing prints a block of text, such as pretty-printed JSON, as is.
func Listing(text string) {
	message.Infoln(emoji.Memo, text)
}
