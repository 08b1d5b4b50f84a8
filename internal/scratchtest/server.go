// Package scratchtest provides an in-process fake of the scratch service
// for client tests. It implements the dataplane routes (create, upload,
// pull, list, delete, stats) and the control-plane bootstrap routes with
// an in-memory store, plus knobs to force failures and record what the
// client sent.
package scratchtest

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/kilobytetools/scratch/internal/util/randutil"
)

const idLength = 8

// File is a stored file with its read-protection metadata.
type File struct {
	Body     []byte
	Password string
	Private  bool
	Burn     bool
}

// Server is the fake service state. Configure the exported fields before
// serving; the recorded fields are written as requests arrive.
type Server struct {
	// Credentials the fake accepts.
	APIKey            string
	Handle            string
	BasicPassword     string
	DataplaneEndpoint string

	// Failure knobs. A non-zero status short-circuits the route.
	CreateStatus    int
	UploadStatus    int
	OmitContentType bool

	mu     sync.Mutex
	files  map[string]*File
	latest string

	// Recorded requests, for assertions.
	LastCreateQuery url.Values
	LastPullAuth    string
	LastPullID      string
	CreateCount     int
	UploadCount     int
}

// New returns a fake accepting the given bearer key.
func New(apiKey string) *Server {
	return &Server{
		APIKey: apiKey,
		files:  make(map[string]*File),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := httprouter.New()
	r.POST("/scratch/file", s.create)
	r.POST("/scratch/file/:id", s.upload)
	r.GET("/scratch/file", s.list)
	r.GET("/scratch/file/:id", s.pull)
	r.DELETE("/scratch/file/:id", s.remove)
	r.GET("/scratch/me/stats", s.stats)
	r.GET("/bootstrap/api_key", s.bootstrapComponent(func() string { return s.APIKey }))
	r.GET("/bootstrap/dataplane_endpoint", s.bootstrapComponent(func() string { return s.DataplaneEndpoint }))
	return r
}

// Get returns a stored file, for test assertions.
func (s *Server) Get(id string) (*File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	return f, ok
}

// Put seeds a file directly, bypassing the push flow.
func (s *Server) Put(id string, f *File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[id] = f
	s.latest = id
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(w, r) {
		return
	}

	q := r.URL.Query()
	s.mu.Lock()
	s.CreateCount++
	s.LastCreateQuery = q
	s.mu.Unlock()

	if s.CreateStatus != 0 {
		writeText(w, s.CreateStatus, "create refused")
		return
	}

	id := q.Get("prefix") + randutil.RandHex(idLength)
	s.mu.Lock()
	s.files[id] = &File{
		Password: q.Get("pw"),
		Private:  q.Get("private") == "true",
		Burn:     q.Get("burn") == "true",
	}
	s.mu.Unlock()

	if s.OmitContentType {
		// An empty content type would be sniffed back in by net/http.
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, id)
		return
	}
	if r.Header.Get("Accept") == "text/javascript" {
		w.Header().Set("Content-Type", "text/javascript")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":%q}`, id)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusCreated)
	fmt.Fprintln(w, id)
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !s.authorized(w, r) {
		return
	}

	s.mu.Lock()
	s.UploadCount++
	s.mu.Unlock()

	if s.UploadStatus != 0 {
		writeText(w, s.UploadStatus, "upload refused")
		return
	}

	id := ps.ByName("id")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeText(w, http.StatusBadRequest, "error reading body")
		return
	}

	s.mu.Lock()
	f, ok := s.files[id]
	if !ok {
		s.mu.Unlock()
		writeText(w, http.StatusNotFound, "no such file")
		return
	}
	f.Body = body
	s.latest = id
	s.mu.Unlock()

	writeText(w, http.StatusOK, "ok")
}

func (s *Server) pull(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.mu.Lock()
	s.LastPullAuth = r.Header.Get("Authorization")
	s.LastPullID = ps.ByName("id")

	id := ps.ByName("id")
	if id == "latest" {
		id = s.latest
	}
	f, ok := s.files[id]
	if !ok {
		s.mu.Unlock()
		writeText(w, http.StatusNotFound, "not found or expired")
		return
	}
	if f.Private && r.Header.Get("Authorization") != "Bearer "+s.APIKey {
		s.mu.Unlock()
		writeText(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if f.Password != "" && r.URL.Query().Get("pw") != f.Password {
		s.mu.Unlock()
		writeText(w, http.StatusForbidden, "wrong password")
		return
	}
	body := f.Body
	if f.Burn {
		delete(s.files, id)
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(body)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(w, r) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "text/plain")
	for id, f := range s.files {
		fmt.Fprintf(w, "%s\t%d\n", id, len(f.Body))
	}
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !s.authorized(w, r) {
		return
	}
	id := ps.ByName("id")
	s.mu.Lock()
	_, ok := s.files[id]
	delete(s.files, id)
	s.mu.Unlock()
	if !ok {
		writeText(w, http.StatusNotFound, "no such file")
		return
	}
	writeText(w, http.StatusOK, "deleted")
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(w, r) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int
	for _, f := range s.files {
		total += len(f.Body)
	}
	writeText(w, http.StatusOK, fmt.Sprintf("files: %d\nbytes: %d", len(s.files), total))
}

func (s *Server) bootstrapComponent(value func() string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		handle, password, ok := r.BasicAuth()
		if !ok || handle != s.Handle || password != s.BasicPassword {
			writeText(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		// Padded to exercise client-side trimming.
		writeText(w, http.StatusOK, "  "+value()+"\n")
	}
}

func (s *Server) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+s.APIKey {
		writeText(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	return true
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
