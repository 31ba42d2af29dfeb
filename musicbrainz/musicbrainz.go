package musicbrainz

import (
	"strings"

	"github.com/mager/musicbrainz-go/musicbrainz"
	"github.com/mager/sleeve/config"
	"github.com/mager/sleeve/util"
	"go.uber.org/zap"
)

const maxGenres = 10

type MusicbrainzClient struct {
	Client  *musicbrainz.MusicbrainzClient
	enabled bool
	log     *zap.SugaredLogger
}

func ProvideMusicbrainz(cfg config.Config, log *zap.SugaredLogger) *MusicbrainzClient {
	var c MusicbrainzClient
	c.Client = musicbrainz.NewMusicbrainzClient().
		WithUserAgent("sleeve", "1.0.0", "https://github.com/mager/sleeve")
	c.enabled = cfg.MusicBrainzEnabled
	c.log = log

	return &c
}

var Options = ProvideMusicbrainz

// Enabled reports whether lookups should be made at all.
func (c *MusicbrainzClient) Enabled() bool {
	return c != nil && c.enabled
}

// RecordingGenres searches for a recording by artist and title and returns its
// genres, most voted first. Artist genres are used when the recording has none.
func (c *MusicbrainzClient) RecordingGenres(artist, title string) ([]string, error) {
	artist, title = strings.TrimSpace(artist), strings.TrimSpace(title)
	if !c.Enabled() || artist == "" || title == "" {
		return nil, nil
	}

	resp, err := c.Client.SearchRecordingsByArtistAndTrack(musicbrainz.SearchRecordingsByArtistAndTrackRequest{
		Artist: artist,
		Track:  title,
	})
	if err != nil {
		return nil, err
	}
	if resp.Count == 0 || len(resp.Recordings) == 0 {
		c.log.Debugw("no recordings found", "artist", artist, "title", title)
		return nil, nil
	}

	return rankGenres(resp.Recordings[0]), nil
}

func rankGenres(rec musicbrainz.Recording) []string {
	counts := make(map[string]int)
	if rec.Genres != nil {
		for _, g := range *rec.Genres {
			counts[g.Name] += g.Count
		}
	}

	if len(counts) == 0 && rec.ArtistCredits != nil {
		for _, credit := range *rec.ArtistCredits {
			if credit.Artist != nil && credit.Artist.Genres != nil {
				for _, g := range *credit.Artist.Genres {
					counts[g.Name] += g.Count
				}
			}
		}
	}

	genres := util.SortedKeys(counts, true)
	if len(genres) > maxGenres {
		genres = genres[:maxGenres]
	}
	return genres
}
