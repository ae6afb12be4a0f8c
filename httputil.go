package rollbook

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/rollbook/date"
)

// Market data plumbing. Yahoo serves end-of-day closes, so responses are
// worth exactly one day: the cache key embeds today's date and stale files
// are simply never read again.

// diskCache caches successful HTTP responses on disk for the current day.
type diskCache struct {
	base http.RoundTripper
}

// cachePath builds the cache file path for a request, unique per day.
func cachePath(req *http.Request) string {
	key := sha1.Sum([]byte(date.Today().String() + " " + req.Method + " " + req.URL.String()))
	return filepath.Join(os.TempDir(), fmt.Sprintf("rollbook-%x", key))
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	file := cachePath(req)
	if content, err := os.ReadFile(file); err == nil {
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	content, err := httputil.DumpResponse(resp, true)
	if err == nil {
		err = os.WriteFile(file, content, 0644)
	}
	if err != nil {
		// A failed cache write only costs a refetch tomorrow.
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// daily returns an http client whose responses expire at midnight.
func daily() *http.Client {
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport}}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("cannot decode response of %v%v: %w", resp.Request.URL.Host, resp.Request.URL.Path, err)
	}
	return nil
}
