package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fete/internal/log"
	"fete/internal/party"
)

// DefaultMusicBaseURL is the video search endpoint queried for music
// items.
const DefaultMusicBaseURL = "http://s-apis.learningfuze.com/hackathon/youtube/search.php"

// musicThumbFormat builds a thumbnail address from a video id.
const musicThumbFormat = "http://i3.ytimg.com/vi/%s/hqdefault.jpg"

// MusicProvider searches an external video API and materializes the
// raw records as video items.
type MusicProvider struct {
	baseURL string
	client  *http.Client
}

// NewMusicProvider creates a music provider. An empty baseURL uses the
// default endpoint; a nil client gets the default timeout.
func NewMusicProvider(baseURL string, client *http.Client) *MusicProvider {
	if baseURL == "" {
		baseURL = DefaultMusicBaseURL
	}
	return &MusicProvider{baseURL: baseURL, client: newHTTPClient(client)}
}

// musicResponse is the wire shape of a video search result.
type musicResponse struct {
	Video []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"video"`
}

// Search posts {q, maxResults} and maps each record to a video item
// whose thumbnail is derived from the record id. Transport errors,
// non-OK statuses, and malformed records all fail explicitly.
func (p *MusicProvider) Search(ctx context.Context, query string, maxResults int) ([]*party.Item, error) {
	form := url.Values{
		"q":          {query},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building music search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("music search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("music search: %w", statusError(resp))
	}

	var decoded musicResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding music search response: %w", err)
	}

	items := make([]*party.Item, 0, len(decoded.Video))
	for _, rec := range decoded.Video {
		it, err := party.NewVideoItem(rec.ID, rec.Title, fmt.Sprintf(musicThumbFormat, rec.ID))
		if err != nil {
			return nil, fmt.Errorf("malformed music record: %w", err)
		}
		items = append(items, it)
	}
	if maxResults > 0 && len(items) > maxResults {
		items = items[:maxResults]
	}

	log.Info(log.CatSearch, "music search complete", "query", query, "results", len(items))
	return items, nil
}
