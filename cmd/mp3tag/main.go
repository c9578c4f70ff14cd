// Command mp3tag prints or updates the ID3 tags of the MP3 files
// given as arguments. Without value flags it prints every decoded
// frame; with them it rewrites the ID3v2.3 tag, and the ID3v1 tag too
// when -v1 is set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/jun-adachi/mp3-tag-editor/id3"
	"github.com/jun-adachi/mp3-tag-editor/meta"
)

var (
	artist  = flag.String("artist", "", "set the artist (TPE1)")
	title   = flag.String("title", "", "set the title (TIT2)")
	album   = flag.String("album", "", "set the album (TALB)")
	year    = flag.String("year", "", "set the year (TYER and TDRC)")
	track   = flag.String("track", "", "set the track number (TRCK)")
	genre   = flag.String("genre", "", "set the genre (TCON)")
	withV1  = flag.Bool("v1", false, "also update the ID3v1 tag")
	verbose = flag.Bool("v", false, "log codec details")
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: mp3tag [flags] file...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ed := id3.Editor{Log: id3.LogFlag(*verbose)}

	attrs := id3.Attrs{}
	set := func(id, v string) {
		if v != "" {
			attrs[id] = v
		}
	}
	set("TPE1", *artist)
	set("TIT2", *title)
	set("TALB", *album)
	set("TYER", *year)
	set("TDRC", *year)
	set("TRCK", *track)
	set("TCON", *genre)

	failed := false
	for _, name := range flag.Args() {
		var err error
		if len(attrs) == 0 {
			err = printFile(ed, name)
		} else {
			err = updateFile(ed, name, attrs)
		}
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func updateFile(ed id3.Editor, name string, attrs id3.Attrs) error {
	if err := ed.UpdateV2(name, attrs, nil); err != nil {
		return err
	}
	if !*withV1 {
		return nil
	}

	rec := id3.V1Tag{
		Title:  attrs["TIT2"],
		Artist: attrs["TPE1"],
		Album:  attrs["TALB"],
		Year:   attrs["TYER"],
	}
	if n, err := strconv.Atoi(attrs["TRCK"]); err == nil {
		rec.Track = n
	}
	if n, err := strconv.Atoi(attrs["TCON"]); err == nil {
		rec.Genre = n
	}
	return ed.UpdateV1(name, rec, id3.V1Tag{})
}

func printFile(ed id3.Editor, name string) error {
	fmt.Println(name)

	if tag, ok := ed.ReadV2(name); ok {
		ids := make([]string, 0, len(tag.Fields))
		for id := range tag.Fields {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("  %s: %s\n", id3.FrameName(id), tag.Fields[id])
		}

		ids = ids[:0]
		for id := range tag.Raw {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("  %s: %d bytes (preserved)\n", id3.FrameName(id), len(tag.Raw[id].Data))
		}
	} else {
		fmt.Println("  no ID3v2 tag")
	}

	if rec, ok := ed.ReadV1(name); ok {
		fmt.Printf("  ID3v1: %q / %q / %q year=%s track=%d genre=%d\n",
			rec.Artist, rec.Album, rec.Title, rec.Year, rec.Track, rec.Genre)
	}

	if info, err := meta.ReadFile(name); err == nil {
		fmt.Printf("  library view: %s - %s (%s, %d) track %d\n",
			info.Artist, info.Title, info.Album, info.Year, info.Track)
	}
	return nil
}
