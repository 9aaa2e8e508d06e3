package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals; always present
	// in the template data so hidden fields render cleanly without it.
	tok, _ := c.Locals("CSRFToken").(string)
	data["CSRFToken"] = tok
	return c.Render(tmpl, data)
}
