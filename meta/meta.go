// Package meta reads display-oriented metadata through the
// github.com/dhowden/tag library. Values are best effort and may
// differ in detail from what package id3 decodes; nothing here
// participates in the write path.
package meta

import (
	"os"

	"github.com/dhowden/tag"
)

// Info is a flat snapshot of the common fields.
type Info struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Comment     string
	Year        int
	Track       int
}

// ReadFile decodes whatever tag format the file carries. Unlike the
// id3 package, absence of a tag surfaces as an error here; callers on
// display paths typically just skip the file.
func ReadFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	track, _ := m.Track()
	return &Info{
		Title:       m.Title(),
		Artist:      m.Artist(),
		Album:       m.Album(),
		AlbumArtist: m.AlbumArtist(),
		Genre:       m.Genre(),
		Comment:     m.Comment(),
		Year:        m.Year(),
		Track:       track,
	}, nil
}
