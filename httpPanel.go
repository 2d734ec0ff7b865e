package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/stianeikeland/go-rpio/v4"
	"golang.org/x/net/context"
)

// remote front panel: the switches and buttons over HTTP, on top of
// whatever inputs are really attached
type httpPanel struct {
	base    inputs
	handler *apiHandler
	srv     *http.Server

	clock clockwork.Clock
	hold  time.Duration
	mu    sync.Mutex
	sw    byte
	until [numButtons]time.Time
}

type displayCodes struct {
	Tens  byte `json:"tens"`
	Units byte `json:"units"`
	LEDs  byte `json:"leds"`
	Dot   bool `json:"dot"`
}

type panelResponse struct {
	Response string        `json:"response"`
	Error    string        `json:"error,omitempty"`
	Clock    *clockStatus  `json:"clock,omitempty"`
	Display  *displayCodes `json:"display,omitempty"`
	Switches byte          `json:"switches"`
}

// settings for the thing that handles HTTP requests
type apiHandler struct {
	rt     runtimeConfig
	panel  *httpPanel
	secret string
	user   string
	realm  string
}

func newHandler(rt runtimeConfig, panel *httpPanel) *apiHandler {
	h := &apiHandler{
		rt:     rt,
		panel:  panel,
		secret: rt.settings.GetString(sHTTPSecret),
		user:   rt.settings.GetString(sHTTPUser),
		realm:  "rtcalarm",
	}
	if h.secret == "" {
		h.secret = newSecret()
		rt.logger.Printf("panel secret for %s: %s", h.user, h.secret)
	}
	return h
}

func newSecret() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// BasicAuth - provide a middleware to authenticate users
func (m *apiHandler) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 || subtle.ConstantTimeCompare([]byte(pass), []byte(m.secret)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`"`)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorised.\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *apiHandler) router() *mux.Router {
	r := mux.NewRouter()
	// auth middleware
	r.Use(m.BasicAuth)
	r.HandleFunc("/api/status", m.apiStatus).Methods("GET")
	r.HandleFunc("/api/switches/{value}", m.apiSwitches).Methods("POST")
	r.HandleFunc("/api/buttons/{name}", m.apiButton).Methods("POST")
	return r
}

func writeAnswer(w http.ResponseWriter, code int, pr panelResponse) {
	output, _ := json.Marshal(pr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(output)
}

func (m *apiHandler) getStatus() panelResponse {
	st := m.rt.state
	f := &st.frame
	return panelResponse{
		Response: "OK",
		Clock:    st.status.Load(),
		Display:  &displayCodes{Tens: f.tens(), Units: f.units(), LEDs: f.leds(), Dot: f.dotOn()},
		Switches: m.panel.switches(),
	}
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, http.StatusOK, m.getStatus())
}

func (m *apiHandler) apiSwitches(w http.ResponseWriter, r *http.Request) {
	v, err := strconv.ParseUint(mux.Vars(r)["value"], 0, 8)
	if err != nil {
		writeAnswer(w, http.StatusBadRequest, panelResponse{Response: "BAD", Error: err.Error()})
		return
	}
	m.panel.setSwitches(byte(v))
	m.rt.logger.Printf("panel switches %08b", v)
	writeAnswer(w, http.StatusOK, m.getStatus())
}

func (m *apiHandler) apiButton(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	for b := pb1; b < numButtons; b++ {
		if b.String() == name {
			m.panel.press(b)
			m.rt.logger.Printf("panel press %s", name)
			writeAnswer(w, http.StatusOK, m.getStatus())
			return
		}
	}
	writeAnswer(w, http.StatusNotFound, panelResponse{Response: "BAD", Error: "no button " + name})
}

func (hp *httpPanel) initInputs(rt runtimeConfig) error {
	if err := hp.base.initInputs(rt); err != nil {
		return err
	}
	hp.clock = rt.clock
	hp.hold = rt.settings.GetDuration(sKeyHold)
	hp.handler = newHandler(rt, hp)
	hp.srv = &http.Server{Addr: rt.settings.GetString(sHTTPAddr), Handler: hp.handler.router()}

	// add to the wg
	wg.Add(1)

	// launch the server
	go func(srv *http.Server) {
		defer wg.Done()
		rt.logger.Printf("starting panel http server on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != http.ErrServerClosed {
			rt.logger.Printf("panel server: %s", err)
		}
		rt.logger.Println("exiting panel server")
	}(hp.srv)
	return nil
}

func (hp *httpPanel) press(b button) {
	hp.mu.Lock()
	defer hp.mu.Unlock()
	hp.until[b] = hp.clock.Now().Add(hp.hold)
}

func (hp *httpPanel) setSwitches(sw byte) {
	hp.mu.Lock()
	defer hp.mu.Unlock()
	hp.sw = sw
}

// a button is down if either the real one or the panel's is
func (hp *httpPanel) buttonLevel(b button) rpio.State {
	if hp.base.buttonLevel(b) == rpio.Low {
		return rpio.Low
	}
	hp.mu.Lock()
	defer hp.mu.Unlock()
	if hp.clock.Now().Before(hp.until[b]) {
		return rpio.Low
	}
	return rpio.High
}

func (hp *httpPanel) switches() byte {
	sw := hp.base.switches()
	hp.mu.Lock()
	defer hp.mu.Unlock()
	return sw | hp.sw
}

func (hp *httpPanel) closeInputs() {
	if hp.srv != nil {
		hp.srv.Shutdown(context.Background())
	}
	hp.base.closeInputs()
}
