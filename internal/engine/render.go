package engine

// RenderKind discriminates RenderCommand variants.
type RenderKind int

const (
	RenderMenu RenderKind = iota
	RenderText
	RenderPrompt
	RenderError
)

// MenuOption is one selectable entry of a menu: a label shown to the user
// and the action token fired when it is pressed.
type MenuOption struct {
	Label string
	Token string
}

// RenderCommand is an abstract display instruction for the transport
// adapter. The engine never references transport concepts; the adapter
// decides how a menu or a prompt actually looks.
type RenderCommand struct {
	Kind    RenderKind
	Title   string
	Body    string
	Options []MenuOption
}

// ShowMenu builds a menu render command with ordered options.
func ShowMenu(title string, options []MenuOption) RenderCommand {
	return RenderCommand{Kind: RenderMenu, Title: title, Options: options}
}

// ShowText builds a plain text render command.
func ShowText(body string) RenderCommand {
	return RenderCommand{Kind: RenderText, Body: body}
}

// Prompt builds a render command asking the user for free-text input.
func Prompt(message string) RenderCommand {
	return RenderCommand{Kind: RenderPrompt, Body: message}
}

// ShowError builds a user-visible error render command.
func ShowError(message string) RenderCommand {
	return RenderCommand{Kind: RenderError, Body: message}
}
