// Command seed loads fixture records into a running lodging API.
//
//	seed -api http://localhost:3000 -file fixtures.yml -email admin@x.com -password secret
//
// With -email and -password it registers that user (an existing one is fine),
// logs in and sends the token with every write. It exits 2 if any record was
// refused.
package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	api := flag.String("api", "http://localhost:3000", "API base URL")
	file := flag.String("file", "fixtures.yml", "YAML fixtures file")
	email := flag.String("email", "", "seed user email; registered and logged in when set")
	password := flag.String("password", "", "seed user password")
	insecure := flag.Bool("insecure", false, "skip TLS certificate verification")
	flag.Parse()

	fx, err := loadFixtures(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}
	if fx.Len() == 0 {
		fmt.Println("Nothing to seed.")
		return
	}

	s := &seeder{api: strings.TrimRight(*api, "/"), cli: httpClient(*insecure), out: os.Stdout, errOut: os.Stderr}
	if *email != "" && *password != "" {
		if err := s.login(*email, *password); err != nil {
			fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
			os.Exit(2)
		}
	}
	if failed := s.seed(fx); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d record(s) failed\n", failed)
		os.Exit(2)
	}
}

func httpClient(insecure bool) *http.Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure}, //nolint:gosec
		Proxy:           http.ProxyFromEnvironment,
	}
	return &http.Client{
		Timeout:   15 * time.Second,
		Transport: tr,
	}
}

type seeder struct {
	api    string
	cli    *http.Client
	token  string
	out    io.Writer
	errOut io.Writer
}

// login registers the seed user, tolerating one that already exists, and
// keeps the session token.
func (s *seeder) login(email, password string) error {
	name, _, _ := strings.Cut(email, "@")
	_, status, err := s.post("/users", map[string]any{"email": email, "name": name, "password": password})
	if err != nil && status != http.StatusConflict {
		return fmt.Errorf("register: %w", err)
	}

	body, _, err := s.post("/sessions", map[string]any{"email": email, "password": password})
	if err != nil {
		return err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return errors.New("no token in response")
	}
	s.token = out.Token
	return nil
}

// seed posts users first, then accommodations, rooms and bookings, and
// returns how many records were refused.
func (s *seeder) seed(fx Fixtures) int {
	collections := []struct {
		path  string
		items []map[string]any
	}{
		{"/users", fx.Users},
		{"/accommodations", fx.Accommodations},
		{"/rooms", fx.Rooms},
		{"/bookings", fx.Bookings},
	}

	failed := 0
	for _, col := range collections {
		for i, item := range col.items {
			body, _, err := s.post(col.path, item)
			if err != nil {
				failed++
				fmt.Fprintf(s.errOut, "Failed to add %s[%d]: %v\n", col.path, i, err)
				continue
			}
			var created struct {
				ID int64 `json:"id"`
			}
			if err := json.Unmarshal(body, &created); err != nil || created.ID == 0 {
				failed++
				fmt.Fprintf(s.errOut, "Failed to add %s[%d]: unexpected response body %q\n", col.path, i, strings.TrimSpace(string(body)))
				continue
			}
			fmt.Fprintf(s.out, "Added %s/%d\n", col.path, created.ID)
		}
	}
	return failed
}

// post sends v as JSON. Any status other than 200 or 201 is an error that
// carries the response body.
func (s *seeder) post(path string, v any) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequest(http.MethodPost, s.api+path, bytes.NewReader(b))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.cli.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return body, resp.StatusCode, fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, resp.StatusCode, nil
}
