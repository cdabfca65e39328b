// Package docs serves the embedded OpenAPI document as YAML and as JSON.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Handler holds the document in both encodings.
type Handler struct {
	yaml []byte
	json []byte
}

// New converts the embedded YAML document to JSON once.
func New() (*Handler, error) {
	return fromYAML(openapiYAML)
}

func fromYAML(doc []byte) (*Handler, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	b, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return &Handler{yaml: doc, json: b}, nil
}

func (h *Handler) YAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", h.yaml)
}

func (h *Handler) JSON(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.json)
}
