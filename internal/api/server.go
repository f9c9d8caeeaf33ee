package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"github.com/tokenmart/market-ledger/internal/market"
	"github.com/tokenmart/market-ledger/internal/treasury"
	"github.com/tokenmart/market-ledger/pkg/currency"
)

// Server exposes the market query views over HTTP. All reads go straight to
// the live registry.
type Server struct {
	registry market.Registry
	treasury *treasury.Treasury
}

func NewServer(registry market.Registry, feeTreasury *treasury.Treasury) Server {
	return Server{registry, feeTreasury}
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHomepage).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/fee", s.handleFee).Methods("GET")
	r.HandleFunc("/items", s.handleActiveItems).Methods("GET")
	r.HandleFunc("/items/{itemId:[0-9]+}", s.handleGetItem).Methods("GET")
	r.HandleFunc("/items/owned/{address}", s.handleItemsOwnedBy).Methods("GET")
	r.HandleFunc("/items/listed/{address}", s.handleItemsListedBy).Methods("GET")
	r.NotFoundHandler = notFoundHandler()

	return r
}

func (s Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprintf(w, "Token Market Ledger")
}

func (s Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s Server) handleFee(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]string{
		"listingFee": currency.FormatAmount(s.treasury.CurrentFee()),
		"operator":   s.treasury.Operator(),
	})
}

func (s Server) handleActiveItems(w http.ResponseWriter, r *http.Request) {
	writeJson(w, s.registry.ActiveItems())
}

func (s Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemId, err := strconv.ParseUint(mux.Vars(r)["itemId"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	item, err := s.registry.GetItem(itemId)
	if err != nil {
		if errors.Is(err, market.ErrItemNotFound) {
			http.Error(w, "Item not available", http.StatusNotFound)
			return
		}

		zap.L().With(zap.Error(err)).Error("Api: Failed to get item")
		http.Error(w, "Failed to get item", http.StatusInternalServerError)
		return
	}

	writeJson(w, item)
}

func (s Server) handleItemsOwnedBy(w http.ResponseWriter, r *http.Request) {
	addr := mux.Vars(r)["address"]
	writeJson(w, s.registry.ItemsOwnedBy(addr))
}

func (s Server) handleItemsListedBy(w http.ResponseWriter, r *http.Request) {
	addr := mux.Vars(r)["address"]
	writeJson(w, s.registry.ItemsListedBy(addr))
}

func writeJson(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().With(zap.Error(err)).Error("Api: Failed to write response")
	}
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})
}
