package handlers

import (
	"estoque/internal/repos"
	"estoque/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Ledger       *services.Ledger
	StockHandler *StockHandler
	APIHandler   *APIHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	ledger := services.NewLedger(repos.NewProductRepo(db))
	return &Deps{
		Ledger:       ledger,
		StockHandler: &StockHandler{Ledger: ledger},
		APIHandler:   &APIHandler{Ledger: ledger},
	}
}
