package handlers

import "github.com/gofiber/fiber/v2"

const (
	kindError   = "erro"
	kindSuccess = "sucesso"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// Locals can be empty on the first hit; the cookie carries the same value.
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// flash adds the message banner every form page shows after a submit.
func flash(data fiber.Map, kind, msg string) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Mensagem"] = msg
	data["TipoMensagem"] = kind
	return data
}
