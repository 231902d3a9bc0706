package backend

// Package backend implements the client side of the flashcard generation
// service: a multipart POST of the source URL to /generate and decoding of the
// returned card list. Content extraction and model invocation live entirely
// behind that endpoint.
