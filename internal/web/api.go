// SPDX-License-Identifier: MIT

package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fecauca/fecauca-web/internal/blog"
	"github.com/fecauca/fecauca-web/internal/site"
)

// APIError is the JSON error body of the API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errPostNotFound = APIError{Code: "POST_NOT_FOUND", Message: "Post not found"}

type postsResponse struct {
	Posts []blog.Post `json:"posts"`
	Count int         `json:"count"`
}

type productsResponse struct {
	Products []site.Product `json:"products"`
	Count    int            `json:"count"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleAPIPosts(w http.ResponseWriter, r *http.Request) {
	posts := blog.FilterPosts(s.posts.Posts(r.Context()), blog.Query{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	})
	writeJSON(w, http.StatusOK, postsResponse{Posts: posts, Count: len(posts)})
}

func (s *Server) handleAPIPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.posts.PostByID(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errPostNotFound)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleAPICategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories": blog.Categories(s.posts.Posts(r.Context())),
	})
}

func (s *Server) handleAPIProducts(w http.ResponseWriter, r *http.Request) {
	products := site.FilterProducts(r.URL.Query().Get("category"), r.URL.Query().Get("brand"))
	writeJSON(w, http.StatusOK, productsResponse{Products: products, Count: len(products)})
}
