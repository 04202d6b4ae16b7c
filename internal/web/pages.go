package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/fadedpez/blackjackr/pkg/entities"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

const indexHTML = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Blackjackr</title></head>
<body>
<h1>Blackjackr</h1>
<p><a href="/game">Play the game</a></p>
</body>
</html>
`

const gameHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Blackjackr</title>
<style>
body { font-family: sans-serif; background: #0b6623; color: #fff; margin: 2em; }
.cards img { height: 140px; margin-right: 6px; }
.banner { font-size: 1.4em; font-weight: bold; margin: 1em 0; }
button { font-size: 1em; padding: .4em 1.2em; margin-right: .4em; }
[hidden] { display: none; }
</style>
</head>
<body>
<h1>Blackjackr</h1>

{{define "hand"}}
<h2>{{.Name}} <span class="score">Score: {{.Score}}{{if .Soft}} (soft){{end}}</span></h2>
<div class="cards">{{range .Cards}}<img src="{{.Src}}" alt="{{.Alt}}">{{end}}</div>
{{end}}

<section id="dealer">{{template "hand" .Dealer}}</section>
<section id="player">{{template "hand" .Player}}</section>

<div id="banner" class="banner"{{if not .Message}} hidden{{end}}>{{.Message}}</div>

<div class="actions">
<button id="hit-btn" data-action="hit"{{if not .InProgress}} disabled{{end}}>Hit</button>
<button id="stand-btn" data-action="stand"{{if not .InProgress}} disabled{{end}}>Stand</button>
<button id="restart-btn" data-action="start">Restart</button>
<button id="howtoplay-btn">How to play</button>
</div>
<p>Cards left in the deck: {{.DeckRemaining}}</p>

<div id="howtoplay-modal" hidden>
<h2>How to play</h2>
<ul>
<li>Get closer to 21 than the dealer without going over.</li>
<li>Number cards count their value, J, Q and K count 10, an ace counts 11 or 1.</li>
<li>Hit to take another card. Reaching 21 or more ends your turn.</li>
<li>Stand to keep your hand. The dealer then draws until reaching 17 or more.</li>
<li>Going over 21 is a bust and loses, even if the dealer busts too. Equal scores push.</li>
</ul>
<button id="close-modal">Close</button>
</div>

<script>
for (const btn of document.querySelectorAll("button[data-action]")) {
  btn.addEventListener("click", async () => {
    await fetch("/api/round/" + btn.dataset.action, {method: "POST"});
    location.reload();
  });
}
const modal = document.getElementById("howtoplay-modal");
document.getElementById("howtoplay-btn").addEventListener("click", () => modal.removeAttribute("hidden"));
document.getElementById("close-modal").addEventListener("click", () => modal.setAttribute("hidden", "hidden"));

const scheme = location.protocol === "https:" ? "wss://" : "ws://";
const events = new WebSocket(scheme + location.host + "/api/round/events");
events.addEventListener("message", (msg) => {
  const event = JSON.parse(msg.data);
  if (event.type !== "outcome") return;
  const banner = document.getElementById("banner");
  banner.textContent = event.round.message;
  banner.removeAttribute("hidden");
});
</script>
</body>
</html>
`

type cardView struct {
	Src string
	Alt string
}

type handView struct {
	Name  string
	Cards []cardView
	Score int
	Soft  bool
}

type gameView struct {
	Dealer        handView
	Player        handView
	InProgress    bool
	Message       string
	DeckRemaining int
}

type pages struct {
	index *template.Template
	game  *template.Template
}

func newPages() *pages {
	return &pages{
		index: template.Must(template.New("index").Parse(indexHTML)),
		game:  template.Must(template.New("game").Parse(gameHTML)),
	}
}

func newHandView(name string, hand bj.HandView, assetBase string) handView {
	view := handView{
		Name:  name,
		Score: hand.Score,
		Soft:  hand.Soft,
		Cards: make([]cardView, len(hand.Cards)),
	}
	for i, card := range hand.Cards {
		view.Cards[i] = newCardView(card, assetBase)
	}
	return view
}

func newCardView(card entities.Card, assetBase string) cardView {
	return cardView{
		Src: card.AssetPath(assetBase),
		Alt: card.String(),
	}
}

func newGameView(snap bj.RoundSnapshot, assetBase string) gameView {
	return gameView{
		Dealer:        newHandView("Dealer", snap.Dealer, assetBase),
		Player:        newHandView("Player", snap.Player, assetBase),
		InProgress:    snap.State == bj.StateInProgress,
		Message:       snap.Message,
		DeckRemaining: snap.DeckRemaining,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, s.pages.index, nil)
}

// handleGame renders the caller's round, dealing one on first visit
func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tables.Snapshot(s.sessionID(w, r))
	if err != nil {
		s.logger.LogError(err)
		http.Error(w, "could not deal a round", statusFor(errorCode(err)))
		return
	}
	s.render(w, s.pages.game, newGameView(snap, s.opts.AssetBaseURL))
}

// render executes into a buffer so a template error never sends half a page
func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to render %s: %v", tmpl.Name(), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
