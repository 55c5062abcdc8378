package handlers

import (
	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"

	applog "estoque/internal/log"
	"estoque/internal/services"
)

type StockHandler struct {
	Ledger *services.Ledger
}

// GET /
func (h *StockHandler) Home(c *fiber.Ctx) error {
	return render(c, "index", nil)
}

// GET /inserir
func (h *StockHandler) InsertForm(c *fiber.Ctx) error {
	return render(c, "inserir", nil)
}

// POST /inserir
func (h *StockHandler) Insert(c *fiber.Ctx) error {
	in := services.ProductInput{
		Supplier: c.FormValue("fornecedor"),
		Name:     c.FormValue("produto"),
		Quantity: c.FormValue("quantidade"),
		Price:    c.FormValue("preco"),
	}
	p, err := h.Ledger.CreateProduct(c.UserContext(), in)
	if err != nil {
		status, msg := failure(c, "stock.insert", err, nil)
		// keep what was typed so the user only fixes the bad field
		return render(c.Status(status), "inserir", flash(fiber.Map{"Form": in}, kindError, msg))
	}
	applog.Audit(c, "stock.insert", map[string]any{
		"product_id": p.ID,
		"supplier":   p.Supplier,
		"name":       p.Name,
		"quantity":   p.Quantity,
		"unit_price": p.UnitPrice.StringFixed(2),
	})
	return render(c, "inserir", flash(nil, kindSuccess, "Produto inserido com sucesso!"))
}

// GET /remover
func (h *StockHandler) RemoveForm(c *fiber.Ctx) error {
	return h.removePage(c, fiber.StatusOK, nil)
}

// POST /remover
func (h *StockHandler) Remove(c *fiber.Ctx) error {
	in := services.RemovalInput{
		ProductID: c.FormValue("produto_id"),
		Amount:    c.FormValue("quantidade"),
	}
	p, err := h.Ledger.RemoveQuantity(c.UserContext(), in)
	if err != nil {
		status, msg := failure(c, "stock.remove", err, map[string]any{"product_id": in.ProductID, "amount": in.Amount})
		return h.removePage(c, status, flash(nil, kindError, msg))
	}
	applog.Audit(c, "stock.remove", map[string]any{
		"product_id": p.ID,
		"amount":     in.Amount,
		"remaining":  p.Quantity,
	})
	return h.removePage(c, fiber.StatusOK, flash(nil, kindSuccess, "Produto removido com sucesso!"))
}

// removePage always re-reads the listing so the select reflects the last write.
func (h *StockHandler) removePage(c *fiber.Ctx, status int, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	products, err := h.Ledger.ListAvailable(c.UserContext())
	if err != nil {
		applog.Error(c, "stock.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o estoque."})
	}
	data["Produtos"] = products
	return render(c.Status(status), "remover", data)
}

// GET /visualizar
func (h *StockHandler) View(c *fiber.Ctx) error {
	sum, err := h.Ledger.ComputeSummary(c.UserContext())
	if err != nil {
		applog.Error(c, "stock.summary.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Não foi possível carregar o estoque."})
	}
	return render(c, "visualizar", fiber.Map{"Resumo": sum})
}

type csvRow struct {
	ID        int64  `csv:"id"`
	Supplier  string `csv:"fornecedor"`
	Name      string `csv:"produto"`
	Quantity  int    `csv:"quantidade"`
	UnitPrice string `csv:"preco_unitario"`
	Value     string `csv:"valor_total"`
}

// GET /visualizar/estoque.csv
func (h *StockHandler) ExportCSV(c *fiber.Ctx) error {
	products, err := h.Ledger.ListAvailable(c.UserContext())
	if err != nil {
		applog.Error(c, "stock.export.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString(msgUnexpected)
	}
	rows := make([]*csvRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &csvRow{
			ID:        p.ID,
			Supplier:  p.Supplier,
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice.StringFixed(2),
			Value:     p.LineValue().StringFixed(2),
		})
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		applog.Error(c, "stock.export.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString(msgUnexpected)
	}
	applog.Info(c, "stock.export", map[string]any{"rows": len(rows)})
	c.Attachment("estoque.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(out)
}
