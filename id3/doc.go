/*
Package id3 reads and writes ID3v1 and ID3v2.3 tags in MPEG audio
files.

Supported versions

Tags are written as ID3v2.3.0 only. Reading accepts any tag that
starts with the "ID3" magic and a well-formed synchsafe size; frames
the package does not decode are carried as opaque byte blobs and
written back unchanged, so data stored by other taggers survives an
update. Unsynchronisation, extended headers and compressed frames are
not supported.

Reading vs writing

Reads never fail: a missing tag, a bad magic, a truncated body or a
frame that overruns the declared size all report the tag as absent.
Writes are the only operations that return errors, and the one error
that matters is AudioNotFoundError: the tag on disk declares a size
past the end of the file and no MPEG frame sync could be found, so
rewriting the file would risk cutting into audio data. In that case
the file is left untouched.

Updating

An update is a single read-merge-write cycle. New attribute values win
over fallback values, which win over whatever the file currently
carries. ID3v1 updates work the same way on the trailing 128-byte
record and never touch the bytes before it.
*/
package id3
