package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qualitydesk/qualitydesk/internal/shared"
)

func TestStatusFor(t *testing.T) {
	notFound := &shared.NotFoundError{Kind: "entity", Key: "x"}
	storeErr := shared.NewDataStoreError("select", "employees", errors.New("connection refused"))

	assert.Equal(t, http.StatusOK, StatusFor(nil))
	assert.Equal(t, http.StatusNotFound, StatusFor(notFound))
	assert.Equal(t, http.StatusOK, StatusFor(storeErr))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}

func TestMessage(t *testing.T) {
	storeErr := shared.NewDataStoreError("insert", "employees", errors.New(`null value in column "name"`))

	assert.Equal(t, `null value in column "name"`, Message(storeErr))
	assert.Equal(t, `entity "x" not found`, Message(&shared.NotFoundError{Kind: "entity", Key: "x"}))
	assert.Equal(t, "Internal Server Error", Message(errors.New("secret detail")))
}

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
