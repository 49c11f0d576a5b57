package guard

// ConsoleLine is one styled console message, logged with a %c directive.
type ConsoleLine struct {
	Text  string
	Style string
}

const (
	consoleWarnStyle = "color: red; font-size: 24px; font-weight: bold;"
	consoleInfoStyle = "color: blue; font-size: 14px;"
)

// ConsoleWarning returns the self-XSS warning printed to the console.
func ConsoleWarning() []ConsoleLine {
	return []ConsoleLine{
		{Text: "¡ALTO!", Style: consoleWarnStyle},
		{Text: "Esta es una función del navegador destinada a desarrolladores.", Style: consoleInfoStyle},
		{Text: "Si alguien te dijo que copiaras y pegaras algo aquí, es un fraude.", Style: consoleInfoStyle},
		{Text: "Más información: https://es.wikipedia.org/wiki/Self-XSS", Style: consoleInfoStyle},
	}
}

// Format returns the printf style format and argument for console.log.
func (l ConsoleLine) Format() (string, string) {
	return "%c" + l.Text, l.Style
}

// BannerStyle is the inline style of the form error banner.
const BannerStyle = "color: #dc3545; padding: 10px; margin: 10px 0; border: 1px solid #dc3545; border-radius: 4px; background: #f8d7da;"
