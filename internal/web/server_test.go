package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/fadedpez/blackjackr/internal/logging"
	"github.com/fadedpez/blackjackr/internal/types"
	"github.com/fadedpez/blackjackr/pkg/entities"
	"github.com/fadedpez/blackjackr/pkg/games/blackjack"
	mock_blackjack "github.com/fadedpez/blackjackr/pkg/games/blackjack/mock"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSession = "8f14e45f-ceea-467f-a0e6-3c1f2d5b9e21"

func roundInProgress() bj.RoundSnapshot {
	return bj.RoundSnapshot{
		ID:    "round-1",
		State: bj.StateInProgress,
		Player: bj.HandView{
			Cards: []entities.Card{
				entities.NewCard(entities.Ace, entities.Spades),
				entities.NewCard(entities.Six, entities.Hearts),
			},
			Score: 17,
			Soft:  true,
		},
		Dealer: bj.HandView{
			Cards: []entities.Card{
				entities.NewCard(entities.King, entities.Hearts),
				entities.NewCard(entities.Nine, entities.Clubs),
			},
			Score: 19,
		},
		DeckRemaining: 48,
	}
}

func roundResolved() bj.RoundSnapshot {
	snap := roundInProgress()
	snap.State = bj.StateResolved
	snap.Outcome = bj.OutcomeDealerWins
	snap.Message = bj.OutcomeDealerWins.Message()
	return snap
}

type ServerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	tables  *mock_blackjack.MockTables
	assets  string
	handler http.Handler
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tables = mock_blackjack.NewMockTables(s.ctrl)

	s.assets = s.T().TempDir()
	s.Require().NoError(os.MkdirAll(filepath.Join(s.assets, "cards"), 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.assets, "cards", "ace_of_spades.svg"), []byte("<svg/>"), 0o644))

	server := NewServer(s.tables, Options{AssetDir: s.assets, AssetBaseURL: "/static/cards"}, logging.Discard())
	s.handler = server.Handler()
}

func (s *ServerSuite) do(method, path string, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if withSession {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: testSession})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) decodeRound(rec *httptest.ResponseRecorder) bj.RoundSnapshot {
	var snap bj.RoundSnapshot
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&snap))
	return snap
}

func (s *ServerSuite) TestIndex() {
	rec := s.do(http.MethodGet, "/", false)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `<a href="/game">Play the game</a>`)
}

func (s *ServerSuite) TestUnknownPath() {
	rec := s.do(http.MethodGet, "/nope", false)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestGamePage() {
	s.tables.EXPECT().Snapshot(testSession).Return(roundInProgress(), nil)

	rec := s.do(http.MethodGet, "/game", true)

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `<img src="/static/cards/ace_of_spades.svg" alt="A of spades">`)
	s.Contains(body, `<img src="/static/cards/king_of_hearts.svg" alt="K of hearts">`)
	s.Contains(body, "Score: 17 (soft)")
	s.Contains(body, "Score: 19")
	s.Contains(body, `id="hit-btn" data-action="hit">`)
	s.Contains(body, "How to play")
	s.Empty(rec.Result().Cookies(), "existing session keeps its cookie")
}

func (s *ServerSuite) TestGamePageResolved() {
	s.tables.EXPECT().Snapshot(testSession).Return(roundResolved(), nil)

	rec := s.do(http.MethodGet, "/game", true)

	body := rec.Body.String()
	s.Contains(body, "Dealer wins")
	s.Contains(body, `id="hit-btn" data-action="hit" disabled>`)
	s.Contains(body, `id="restart-btn" data-action="start">`)
}

func (s *ServerSuite) TestNewSessionGetsCookie() {
	var tableID string
	s.tables.EXPECT().Snapshot(gomock.Any()).DoAndReturn(func(id string) (bj.RoundSnapshot, error) {
		tableID = id
		return roundInProgress(), nil
	})

	rec := s.do(http.MethodGet, "/api/round", false)

	s.Equal(http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(SessionCookie, cookies[0].Name)
	s.Equal(tableID, cookies[0].Value)
	s.True(cookies[0].HttpOnly)
	_, err := uuid.Parse(tableID)
	s.NoError(err)
}

func (s *ServerSuite) TestMalformedCookieIsReplaced() {
	s.tables.EXPECT().Snapshot(gomock.Not(gomock.Eq("not-a-uuid"))).Return(roundInProgress(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/round", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Len(rec.Result().Cookies(), 1)
}

func (s *ServerSuite) TestGetRound() {
	s.tables.EXPECT().Snapshot(testSession).Return(roundInProgress(), nil)

	rec := s.do(http.MethodGet, "/api/round", true)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.Equal(roundInProgress(), s.decodeRound(rec))
}

func (s *ServerSuite) TestActions() {
	testCases := []struct {
		path   string
		expect func() *gomock.Call
	}{
		{"/api/round/start", func() *gomock.Call { return s.tables.EXPECT().Restart(testSession) }},
		{"/api/round/hit", func() *gomock.Call { return s.tables.EXPECT().Hit(testSession) }},
		{"/api/round/stand", func() *gomock.Call { return s.tables.EXPECT().Stand(testSession) }},
	}

	for _, tc := range testCases {
		s.Run(tc.path, func() {
			tc.expect().Return(roundResolved(), nil).Times(1)

			rec := s.do(http.MethodPost, tc.path, true)

			s.Equal(http.StatusOK, rec.Code)
			s.Equal(bj.StateResolved, s.decodeRound(rec).State)
		})
	}
}

func (s *ServerSuite) TestActionsRequirePost() {
	rec := s.do(http.MethodGet, "/api/round/hit", true)
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func (s *ServerSuite) TestActionError() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   types.ErrorCode
	}{
		{
			name:   "empty deck",
			err:    types.WrapError(types.ErrEmptyDeck, "no cards left to draw", entities.ErrEmptyDeck),
			status: http.StatusConflict,
			code:   types.ErrEmptyDeck,
		},
		{
			name:   "bad argument",
			err:    types.NewGameError(types.ErrInvalidArgument, "table ID is required"),
			status: http.StatusBadRequest,
			code:   types.ErrInvalidArgument,
		},
		{
			name:   "plain error",
			err:    context.DeadlineExceeded,
			status: http.StatusInternalServerError,
			code:   types.ErrInternalError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.tables.EXPECT().Hit(testSession).Return(bj.RoundSnapshot{}, tc.err)

			rec := s.do(http.MethodPost, "/api/round/hit", true)

			s.Equal(tc.status, rec.Code)
			var body errorResponse
			s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
			s.Equal(tc.code, body.Code)
		})
	}
}

func (s *ServerSuite) TestStaticAssets() {
	rec := s.do(http.MethodGet, "/static/cards/ace_of_spades.svg", false)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("<svg/>", rec.Body.String())
}

func (s *ServerSuite) TestEvents() {
	events := make(chan bj.RoundSnapshot, 1)
	cancelled := make(chan struct{})
	s.tables.EXPECT().Subscribe(testSession).Return((<-chan bj.RoundSnapshot)(events), func() { close(cancelled) })

	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	header := http.Header{}
	header.Add("Cookie", SessionCookie+"="+testSession)
	c, _, err := websocket.Dial(ctx, strings.Replace(srv.URL, "http", "ws", 1)+"/api/round/events", &websocket.DialOptions{
		HTTPHeader: header,
	})
	s.Require().NoError(err)
	defer c.CloseNow()

	events <- roundResolved()

	_, data, err := c.Read(ctx)
	s.Require().NoError(err)

	var event OutcomeEvent
	s.Require().NoError(json.Unmarshal(data, &event))
	s.Equal("outcome", event.Type)
	s.Equal(roundResolved(), event.Round)

	s.Require().NoError(c.Close(websocket.StatusNormalClosure, ""))
	select {
	case <-cancelled:
	case <-ctx.Done():
		s.Fail("subscription was not cancelled")
	}
}

func (s *ServerSuite) TestEventsEndWhenTableCloses() {
	events := make(chan bj.RoundSnapshot)
	s.tables.EXPECT().Subscribe(testSession).Return((<-chan bj.RoundSnapshot)(events), func() {})

	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	header := http.Header{}
	header.Add("Cookie", SessionCookie+"="+testSession)
	c, _, err := websocket.Dial(ctx, strings.Replace(srv.URL, "http", "ws", 1)+"/api/round/events", &websocket.DialOptions{
		HTTPHeader: header,
	})
	s.Require().NoError(err)
	defer c.CloseNow()

	close(events)

	_, _, err = c.Read(ctx)
	s.Equal(websocket.StatusGoingAway, websocket.CloseStatus(err))
}

// TestWithManager drives a real manager end to end: acting on a resolved
// round returns it unchanged
func TestWithManager(t *testing.T) {
	manager := blackjack.NewManager(blackjack.WithManagerLogger(logging.Discard()))
	handler := NewServer(manager, Options{}, logging.Discard()).Handler()

	post := func(path string) bj.RoundSnapshot {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: testSession})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var snap bj.RoundSnapshot
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
		return snap
	}

	dealt := post("/api/round/start")
	assert.Equal(t, bj.StateInProgress, dealt.State)

	resolved := post("/api/round/stand")
	assert.Equal(t, bj.StateResolved, resolved.State)
	assert.NotEmpty(t, resolved.Message)

	again := post("/api/round/hit")
	assert.Equal(t, resolved, again)
}
