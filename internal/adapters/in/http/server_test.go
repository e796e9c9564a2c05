package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "valueguard/internal/adapters/in/http"
	"valueguard/internal/core/application/usecases/commands"
	"valueguard/internal/core/application/usecases/queries"
	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/generated/servers"
	"valueguard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHolderCreator struct {
	mock.Mock
}

func (m *MockHolderCreator) Handle(ctx context.Context, cmd commands.CreateHolderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockHolderGetter struct {
	mock.Mock
}

func (m *MockHolderGetter) Handle(ctx context.Context, query queries.GetHolderQuery) (queries.HolderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.HolderResponse), args.Error(1)
}

type MockHolderLister struct {
	mock.Mock
}

func (m *MockHolderLister) Handle(ctx context.Context, query queries.GetAllHoldersQuery) ([]queries.HolderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.HolderResponse), args.Error(1)
}

type fixture struct {
	echo    *echo.Echo
	creator *MockHolderCreator
	getter  *MockHolderGetter
	lister  *MockHolderLister
}

func newFixture() fixture {
	f := fixture{
		echo:    echo.New(),
		creator: new(MockHolderCreator),
		getter:  new(MockHolderGetter),
		lister:  new(MockHolderLister),
	}
	servers.RegisterHandlers(f.echo, httpadapter.NewServer(f.creator, f.getter, f.lister))
	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func holderResponse(t *testing.T, raw int) queries.HolderResponse {
	t.Helper()
	value, err := kernel.NewPositiveValue(raw)
	require.NoError(t, err)
	return queries.HolderResponse{ID: kernel.NewUUID(), Value: value, CreatedAt: time.Now().UTC()}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateHolder(t *testing.T) {
	t.Run("Given a positive value When posting Then holder is created", func(t *testing.T) {
		f := newFixture()
		id := kernel.NewUUID()
		f.creator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateHolderCommand) bool {
			return cmd.Value().Value() == 42
		})).Return(id, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/holders", `{"value":42}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body servers.Holder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id.Bytes(), body.Id)
		assert.Equal(t, int64(42), body.Value)
		assert.Equal(t, "42", body.Text)
		f.creator.AssertExpectations(t)
	})

	for _, raw := range []string{"0", "-5"} {
		t.Run("Given value "+raw+" When posting Then 422 and handler is not called", func(t *testing.T) {
			f := newFixture()

			rec := f.do(http.MethodPost, "/api/v1/holders", `{"value":`+raw+`}`)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, int32(http.StatusUnprocessableEntity), body.Code)
			assert.Contains(t, body.Message, "value must be positive")
			f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}

	for name, payload := range map[string]string{
		"malformed json": `{"value":`,
		"missing value":  `{}`,
		"fractional":     `{"value":1.5}`,
	} {
		t.Run("Given "+name+" When posting Then 400", func(t *testing.T) {
			f := newFixture()

			rec := f.do(http.MethodPost, "/api/v1/holders", payload)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
			f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}

	t.Run("Given a storage failure When posting Then 500", func(t *testing.T) {
		f := newFixture()
		f.creator.On("Handle", mock.Anything, mock.Anything).Return(kernel.UUID{}, errors.New("db down")).Once()

		rec := f.do(http.MethodPost, "/api/v1/holders", `{"value":3}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create holder", decodeError(t, rec).Message)
	})
}

func TestGetHolder(t *testing.T) {
	t.Run("Given an existing holder When getting Then 200", func(t *testing.T) {
		f := newFixture()
		stored := holderResponse(t, 7)
		f.getter.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetHolderQuery) bool {
			return q.ID().IsEqual(stored.ID)
		})).Return(stored, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/holders/"+stored.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body servers.Holder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, stored.ID.Bytes(), body.Id)
		assert.Equal(t, "7", body.Text)
	})

	t.Run("Given a malformed ID When getting Then 400", func(t *testing.T) {
		f := newFixture()

		rec := f.do(http.MethodGet, "/api/v1/holders/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.getter.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("Given the nil UUID When getting Then 400", func(t *testing.T) {
		f := newFixture()

		rec := f.do(http.MethodGet, "/api/v1/holders/00000000-0000-0000-0000-000000000000", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Given a missing holder When getting Then 404", func(t *testing.T) {
		f := newFixture()
		id := kernel.NewUUID()
		f.getter.On("Handle", mock.Anything, mock.Anything).
			Return(queries.HolderResponse{}, errs.NewObjectNotFoundError("holder", id.String())).Once()

		rec := f.do(http.MethodGet, "/api/v1/holders/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, int32(http.StatusNotFound), decodeError(t, rec).Code)
	})

	t.Run("Given a corrupt row When getting Then 500", func(t *testing.T) {
		f := newFixture()
		f.getter.On("Handle", mock.Anything, mock.Anything).
			Return(queries.HolderResponse{}, errs.NewValueIsNotPositiveError("value", 0)).Once()

		rec := f.do(http.MethodGet, "/api/v1/holders/"+kernel.NewUUID().String(), "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetHolders(t *testing.T) {
	t.Run("Given stored holders When listing Then all are returned in order", func(t *testing.T) {
		f := newFixture()
		first, second := holderResponse(t, 1), holderResponse(t, 2)
		f.lister.On("Handle", mock.Anything, mock.Anything).
			Return([]queries.HolderResponse{first, second}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/holders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body []servers.Holder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, first.ID.Bytes(), body[0].Id)
		assert.Equal(t, "2", body[1].Text)
	})

	t.Run("Given no holders When listing Then an empty array is returned", func(t *testing.T) {
		f := newFixture()
		f.lister.On("Handle", mock.Anything, mock.Anything).Return([]queries.HolderResponse{}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/holders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Given a query failure When listing Then 500", func(t *testing.T) {
		f := newFixture()
		f.lister.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		rec := f.do(http.MethodGet, "/api/v1/holders", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRegisterDocs(t *testing.T) {
	e := echo.New()
	require.NoError(t, httpadapter.RegisterDocs(e))
	require.NoError(t, httpadapter.RegisterDocs(echo.New()), "registering twice must be safe")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/holders")
}
