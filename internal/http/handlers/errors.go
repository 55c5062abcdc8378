package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"estoque/internal/domain"
	applog "estoque/internal/log"
)

const msgUnexpected = "Não foi possível concluir a operação. Tente novamente."

// failure maps a ledger error to a status and a message safe to show,
// and logs it at the matching level. Storage errors never reach the page.
func failure(c *fiber.Ctx, action string, err error, fields map[string]any) (int, string) {
	var (
		ve  *domain.ValidationError
		ise *domain.InsufficientStockError
	)
	if fields == nil {
		fields = map[string]any{}
	}
	switch {
	case errors.As(err, &ve):
		fields["field"] = ve.Field
		applog.Warn(c, "validation.fail", fields)
		return fiber.StatusBadRequest, ve.Msg
	case errors.As(err, &ise):
		fields["available"] = ise.Available
		fields["requested"] = ise.Requested
		applog.Warn(c, action+".refused", fields)
		return fiber.StatusConflict, "Erro: " + ise.Error()
	case errors.Is(err, domain.ErrNotFound):
		applog.Warn(c, action+".notfound", fields)
		return fiber.StatusNotFound, domain.ErrNotFound.Error()
	default:
		applog.Error(c, action+".fail", err, fields)
		return fiber.StatusInternalServerError, msgUnexpected
	}
}
