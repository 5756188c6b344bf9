package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/server/products"
)

type createProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

type productPayload struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

func toProductPayload(p *products.Product) productPayload {
	return productPayload{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
	}
}

// handleCreateProduct serves POST /products (authenticated).
func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrInvalidToken)
		return
	}

	var req createProductRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	product, err := s.products.Create(r.Context(), principal, req.Title, req.Description, req.PriceCents)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductPayload(product))
}

// handleGetProduct serves GET /products/{id} (public).
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductPayload(product))
}

// handleDeleteProduct serves DELETE /products/{id} (authenticated; existence
// is checked before ownership, so an absent id yields 404, not 403).
func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrInvalidToken)
		return
	}

	if err := s.products.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
