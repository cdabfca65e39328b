// Package common provides small helpers shared by the resource handlers.
package common

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/lodging-api/internal/store"
)

// parentAliases are accepted in place of parentId in room and booking
// payloads and query strings.
var parentAliases = []string{"accommodationId", "hotelId"}

// ID parses a path parameter as a record id. A value that is not a positive
// integer cannot name a record of kind, so it is reported as not found.
func ID(c *gin.Context, param, kind string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, &store.NotFoundError{Kind: kind, ID: id}
	}
	return id, nil
}

// BindFields decodes the request body as a JSON object. An empty body is an
// empty object.
func BindFields(c *gin.Context) (map[string]any, error) {
	var fields map[string]any
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
			return nil, &store.ValidationError{Reason: "request body must be a JSON object"}
		}
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// NormalizeParent folds parentId aliases into parentId. An explicit parentId
// wins over an alias.
func NormalizeParent(fields map[string]any) {
	for _, alias := range parentAliases {
		v, ok := fields[alias]
		if !ok {
			continue
		}
		if _, set := fields["parentId"]; !set {
			fields["parentId"] = v
		}
		delete(fields, alias)
	}
}

// ParentFilter reads ?parentId= (or an alias) from the query string. ok is
// false when no filter was given.
func ParentFilter(c *gin.Context) (id int64, ok bool, err error) {
	raw, found := c.GetQuery("parentId")
	for _, alias := range parentAliases {
		if found {
			break
		}
		raw, found = c.GetQuery(alias)
	}
	if !found {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, &store.ValidationError{Fields: []string{"parentId"}, Reason: "parentId must be an integer"}
	}
	return id, true, nil
}

// Created answers 201 with v as the body and location as the Location header.
func Created(c *gin.Context, location string, v any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, v)
}
