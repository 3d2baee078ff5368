package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsFormAndDecodesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/token", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin", r.PostForm.Get("username"))
		require.Equal(t, "s3cret", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Session{})
	token, err := c.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestAuthorizedRequestsCarryBearerHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession("tok-9"))
	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bearer tok-9", got)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"title":"Unauthorized","detail":"token expired"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession("stale"))
	_, err := c.ListSales(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthenticated))
}

func TestAPIErrorKeepsProblemBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"title":"Validation Failed","detail":"stock must be positive"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Session{})
	_, err := c.ListProducts(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Validation Failed", apiErr.Title)
	assert.Equal(t, "stock must be positive", apiErr.Detail)
}

func TestListProductsFlattensNestedMasterdata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 4, "name": "Ibuprofen 400mg", "description": "", "stock": 30, "price": 5.5,
			"category": {"id": 1, "name": "Analgesics", "description": ""},
			"brand": {"id": 2, "name": "Genfar"},
			"provider": {"id": 3, "ruc": 20100100100, "name": "Droguería Lima", "address": "", "phone": "", "email": ""}
		}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, Session{})
	rows, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Analgesics", rows[0].CategoryName)
	assert.Equal(t, "Genfar", rows[0].BrandName)
	assert.Equal(t, "Droguería Lima", rows[0].ProviderName)

	form := rows[0].FormValues()
	assert.Equal(t, "Ibuprofen 400mg", form.Name)
	assert.Equal(t, "Analgesics", form.CategoryName)
}

func TestWithSessionDoesNotMutateOriginal(t *testing.T) {
	base := New("http://example.invalid", Session{})
	authed := base.WithSession(NewSession("tok"))
	assert.Empty(t, base.Session().Token())
	assert.Equal(t, "tok", authed.Session().Token())
}
