// Package decode opens audio files as streams of interleaved float32
// samples in [-1, 1].
//
// Supported containers are WAV and AIFF (go-audio), MP3 (go-mp3) and Ogg
// Vorbis (oggvorbis). [Open] picks a decoder by file extension; custom
// decoders can be added to a [Registry].
package decode
