package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"floraconcierge/backend/internal/domain/quote"
	pdfgen "floraconcierge/backend/internal/domain/quote/pdf/gofpdf"
)

// CartQuote renders the session's cart as a printable PDF quote.
func (h *Handlers) CartQuote(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	cart := s.Cart()
	if len(cart) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "cart is empty")
		return
	}

	plants, err := h.Catalog.PlantsByTenant(r.Context(), s.Tenant.ID)
	if err != nil {
		log.Printf("cart quote session=%s catalog load failed: %v", s.ID, err)
		writeError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}

	number := fmt.Sprintf("FC-%d", time.Now().Unix())
	q := quote.FromCart(number, s.Tenant.Name, s.Tenant.Contact.Phone, cart, plants)

	gen := pdfgen.New()
	pdfBytes, err := gen.Generate(q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", number+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
