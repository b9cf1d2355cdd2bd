package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"guestbook/config"
	"guestbook/internal/delivery/api/router"
	"guestbook/internal/delivery/api/router/handler"
	deliverycontext "guestbook/internal/delivery/context"
	"guestbook/internal/infra/auth"
	"guestbook/internal/infra/cache"
	"guestbook/internal/infra/metrics"
	docstorepersistence "guestbook/internal/infra/persistence/docstore"
	"guestbook/internal/infra/pubsub"
	"guestbook/internal/infra/qrcode"
	"guestbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/docstore/memdocstore"
)

type wishBody struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitationId"`
	Name         string `json:"name"`
	NameKey      string `json:"nameKey"`
	Message      string `json:"message"`
	CreatedAt    *int64 `json:"createdAt"`
}

type apiBody struct {
	Error   string      `json:"error"`
	Wish    *wishBody   `json:"wish"`
	Wishes  []*wishBody `json:"wishes"`
	State   string      `json:"state"`
	NameKey string      `json:"nameKey"`
	Link    string      `json:"link"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "16KB"
	cfg.Watch.PollInterval = 10 * time.Millisecond
	cfg.GuestPass = &config.GuestPassConfig{Secret: "api-test-secret", TTL: time.Hour}

	return cfg
}

// newTestAPI wires the API on an in-memory document store.
func newTestAPI(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	coll, err := memdocstore.OpenCollection(docstorepersistence.KeyField, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = coll.Close() })

	m := metrics.NewMetrics(prometheus.NewRegistry())

	wishUC := impl.NewWishService(impl.WishServiceParams{
		TxManager: docstorepersistence.NewTransactionManager(coll),
		WishRepo:  docstorepersistence.NewWishRepository(coll),
		Cache:     cache.NewNoOpCache(),
		Publisher: pubsub.NewNoopPublisher(logger),
		Metrics:   m,
		Logger:    logger,
	})

	guestPass, err := auth.NewGuestPassService(cfg)
	require.NoError(t, err)

	invitationUC := impl.NewInvitationService(impl.InvitationServiceParams{
		QRCode:    qrcode.NewQRCodeService("https://wedding.example/invite", 256, "M"),
		GuestPass: guestPass,
		Logger:    logger,
	})

	watcher := impl.NewWishWatcher(impl.WishWatcherParams{Wishes: wishUC, Config: cfg, Logger: logger})

	return NewEcho(router.RouterParams{
		WishHandler: handler.NewWishHandler(handler.WishHandlerParams{
			WishUC:       wishUC,
			Watcher:      watcher,
			InvitationUC: invitationUC,
		}),
		InvitationHandler: handler.NewInvitationHandler(invitationUC),
		Metrics:           m,
		Config:            cfg,
		Logger:            logger,
	})
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) apiBody {
	t.Helper()

	var body apiBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

const nadyaWish = `{"invitationId":"w1","name":"Nadya","nameKey":"nadya","message":"Congrats!"}`

func TestAPI_PostThenRepeatConflicts(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	rec := doRequest(e, http.MethodPost, "/api/wishes", nadyaWish)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	require.NotNil(t, created.Wish)
	assert.Equal(t, "Nadya", created.Wish.Name)
	assert.Equal(t, "w1_nadya", created.Wish.ID)
	assert.Equal(t, "nadya", created.Wish.NameKey)
	require.NotNil(t, created.Wish.CreatedAt)
	assert.Equal(t, "posted", created.State)

	rec = doRequest(e, http.MethodPost, "/api/wishes", nadyaWish)
	require.Equal(t, http.StatusConflict, rec.Code)
	conflict := decodeBody(t, rec)
	assert.Equal(t, "already-posted", conflict.Error)
	assert.Equal(t, "conflict", conflict.State)
	require.NotNil(t, conflict.Wish)
	assert.Equal(t, "Congrats!", conflict.Wish.Message)
	assert.Equal(t, *created.Wish.CreatedAt, *conflict.Wish.CreatedAt)
}

func TestAPI_CollidingNameConflicts(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	rec := doRequest(e, http.MethodPost, "/api/wishes", `{"invitationId":"w1","name":"Dr. Nadya","nameKey":"Dr. Nadya","message":"First"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/wishes", `{"invitationId":"w1","name":"dr nadya!!","nameKey":"dr nadya!!","message":"Second"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "First", decodeBody(t, rec).Wish.Message)

	rec = doRequest(e, http.MethodPost, "/api/wishes", `{"invitationId":"w2","name":"Dr. Nadya","nameKey":"dr_nadya","message":"Other party"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_ListAfterPost(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPost, "/api/wishes", nadyaWish).Code)
	require.Equal(t, http.StatusConflict, doRequest(e, http.MethodPost, "/api/wishes", nadyaWish).Code)

	rec := doRequest(e, http.MethodGet, "/api/wishes?invitationId=w1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Len(t, body.Wishes, 1)
	assert.Equal(t, "Nadya", body.Wishes[0].Name)

	rec = doRequest(e, http.MethodGet, "/api/wishes?invitationId=empty", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"wishes":[]}`, rec.Body.String())
}

func TestAPI_FindByNameKey(t *testing.T) {
	e := newTestAPI(t, newTestConfig())
	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPost, "/api/wishes", nadyaWish).Code)

	rec := doRequest(e, http.MethodGet, "/api/wishes?invitationId=w1&nameKey=NADYA", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.NotNil(t, body.Wish)
	assert.Equal(t, "Congrats!", body.Wish.Message)

	rec = doRequest(e, http.MethodGet, "/api/wishes?invitationId=w1&nameKey=raka", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"wish":null}`, rec.Body.String())
}

func TestAPI_RequestErrors(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing fields",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       `{"invitationId":"w1","name":"","nameKey":"","message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing invitationId, name, nameKey, or message",
		},
		{
			name:       "absent name key",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       `{"invitationId":"w1","name":"Raka","message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing invitationId, name, nameKey, or message",
		},
		{
			name:       "blank name key",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       `{"invitationId":"w1","name":"Raka","nameKey":"  ","message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing invitationId, name, nameKey, or message",
		},
		{
			name:       "name key too long",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       fmt.Sprintf(`{"invitationId":"w1","name":"Raka","nameKey":%q,"message":"hi"}`, strings.Repeat("r-", 61)),
			wantStatus: http.StatusBadRequest,
			wantError:  "nameKey is too long",
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       `{"invitationId":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid JSON",
		},
		{
			name:       "non string field",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       `{"invitationId":"w1","name":42,"message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing invitationId, name, nameKey, or message",
		},
		{
			name:       "name too long",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       fmt.Sprintf(`{"invitationId":"w1","name":%q,"nameKey":"n","message":"hi"}`, strings.Repeat("n", 81)),
			wantStatus: http.StatusBadRequest,
			wantError:  "Name is too long",
		},
		{
			name:       "message too long",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       fmt.Sprintf(`{"invitationId":"w1","name":"Raka","nameKey":"raka","message":%q}`, strings.Repeat("m", 801)),
			wantStatus: http.StatusBadRequest,
			wantError:  "Message is too long",
		},
		{
			name:       "unnormalizable name",
			method:     http.MethodPost,
			target:     "/api/wishes",
			body:       `{"invitationId":"w1","name":"!!!","nameKey":"!!!","message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid nameKey",
		},
		{
			name:       "list without invitation",
			method:     http.MethodGet,
			target:     "/api/wishes",
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing invitationId",
		},
		{
			name:       "state without invitation",
			method:     http.MethodGet,
			target:     "/api/wishes/state?to=Raka",
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing invitationId",
		},
		{
			name:       "state with forged pass",
			method:     http.MethodGet,
			target:     "/api/wishes/state?invitationId=w1&pass=forged",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid guest pass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rec).Error)
		})
	}
}

func TestAPI_BodyTooLarge(t *testing.T) {
	cfg := newTestConfig()
	cfg.HTTP.MaxRequestBodySize = "1KB"
	e := newTestAPI(t, cfg)

	body := fmt.Sprintf(`{"invitationId":"w1","name":"Raka","message":%q}`, strings.Repeat("m", 2048))
	rec := doRequest(e, http.MethodPost, "/api/wishes", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAPI_ConcurrentPostsCreateOnce(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	const attempts = 12
	codes := make(chan int, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Go(func() {
			body := fmt.Sprintf(`{"invitationId":"race","name":"Raka","nameKey":"raka","message":"attempt %d"}`, i)
			codes <- doRequest(e, http.MethodPost, "/api/wishes", body).Code
		})
	}
	wg.Wait()
	close(codes)

	created, conflicts := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	rec := doRequest(e, http.MethodGet, "/api/wishes?invitationId=race", "")
	assert.Len(t, decodeBody(t, rec).Wishes, 1)
}

func TestAPI_NameKeyAtLimitIsAccepted(t *testing.T) {
	e := newTestAPI(t, newTestConfig())
	nameKey := strings.Repeat("k", 120)

	body := fmt.Sprintf(`{"invitationId":"w1","name":"Raka","nameKey":%q,"message":"hi"}`, nameKey)
	rec := doRequest(e, http.MethodPost, "/api/wishes", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, nameKey, decodeBody(t, rec).Wish.NameKey)
}

func TestAPI_GuestStateByName(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	rec := doRequest(e, http.MethodGet, "/api/wishes/state?invitationId=w1&to=Nadya", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"eligible","nameKey":"nadya","wish":null}`, rec.Body.String())

	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPost, "/api/wishes", nadyaWish).Code)

	rec = doRequest(e, http.MethodGet, "/api/wishes/state?invitationId=w1&to=Nadya", "")
	body := decodeBody(t, rec)
	assert.Equal(t, "conflict", body.State)
	require.NotNil(t, body.Wish)
	assert.Equal(t, "Congrats!", body.Wish.Message)

	rec = doRequest(e, http.MethodGet, "/api/wishes/state?invitationId=w1&to=%20%20", "")
	assert.Equal(t, "not-eligible", decodeBody(t, rec).State)
}

func TestAPI_GuestStateByPass(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	rec := doRequest(e, http.MethodGet, "/api/invitations/w1/link?to=Dr.%20Nadya", "")
	require.Equal(t, http.StatusOK, rec.Code)
	link, err := url.Parse(decodeBody(t, rec).Link)
	require.NoError(t, err)
	pass := link.Query().Get("pass")
	require.NotEmpty(t, pass)
	assert.Equal(t, "Dr. Nadya", link.Query().Get("to"))

	rec = doRequest(e, http.MethodGet, "/api/wishes/state?invitationId=w1&pass="+url.QueryEscape(pass), "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "eligible", body.State)
	assert.Equal(t, "dr_nadya", body.NameKey)

	rec = doRequest(e, http.MethodGet, "/api/wishes/state?invitationId=w2&pass="+url.QueryEscape(pass), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_GuestQRCode(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	rec := doRequest(e, http.MethodGet, "/api/invitations/w1/qr?to=Raka", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])

	rec = doRequest(e, http.MethodGet, "/api/invitations/w1/qr", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_StreamWishes(t *testing.T) {
	e := newTestAPI(t, newTestConfig())
	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPost, "/api/wishes", nadyaWish).Code)

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/api/wishes/stream?invitationId=w1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.NotEmpty(t, events)
	assert.True(t, strings.HasPrefix(events[0], "event: wishes\ndata: "), events[0])
	assert.Contains(t, events[0], `"name":"Nadya"`)
}

func TestAPI_RateLimitedSubmissions(t *testing.T) {
	cfg := newTestConfig()
	cfg.HTTP.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: 0.001, Burst: 1, Expires: time.Minute}
	e := newTestAPI(t, cfg)

	rec := doRequest(e, http.MethodPost, "/api/wishes", nadyaWish)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/wishes", nadyaWish)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/wishes?invitationId=w1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_HealthMetricsAndRequestID(t *testing.T) {
	e := newTestAPI(t, newTestConfig())

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	require.Equal(t, http.StatusCreated, doRequest(e, http.MethodPost, "/api/wishes", nadyaWish).Code)

	rec = doRequest(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `guestbook_wish_submissions_total{outcome="created"} 1`)
	assert.Contains(t, rec.Body.String(), `guestbook_http_request_duration_seconds_count{method="POST",path="/api/wishes",status="201"} 1`)
}
