package coachclient

import "io"

// Chunk is one piece of a chat reply.
type Chunk struct {
	Text string `json:"text"`
}

// ChatStream is a lazy sequence over a chat reply. The current transport
// delivers the whole reply as a single chunk; the Recv contract stays the
// same if incremental delivery replaces it.
type ChatStream struct {
	fetch func() (string, error)
	done  bool
}

// Recv returns the next chunk, or io.EOF when the stream is exhausted. The
// underlying HTTP request happens on the first call; a transport failure is
// returned as-is and ends the stream.
func (s *ChatStream) Recv() (*Chunk, error) {
	if s.done {
		return nil, io.EOF
	}
	s.done = true

	text, err := s.fetch()
	if err != nil {
		return nil, err
	}
	return &Chunk{Text: text}, nil
}
