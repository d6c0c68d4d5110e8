package client

import (
	"requestgo/body"
	"requestgo/header"
	"requestgo/message"
)

// DefaultClient backs the package-level helpers.
var DefaultClient = New(Options{})

// Request sends a one-off request through the default client.
func Request(
	method message.Method, url string, headers *header.Map, b body.Body,
) (*message.Response, error) {
	return DefaultClient.Request(method, url, headers, b)
}

func Get(url string) (*message.Response, error) { return DefaultClient.Get(url) }

func Head(url string) (*message.Response, error) { return DefaultClient.Head(url) }

func Post(url string, b body.Body) (*message.Response, error) {
	return DefaultClient.Post(url, b)
}

func Put(url string, b body.Body) (*message.Response, error) {
	return DefaultClient.Put(url, b)
}

func Patch(url string, b body.Body) (*message.Response, error) {
	return DefaultClient.Patch(url, b)
}

func Delete(url string) (*message.Response, error) { return DefaultClient.Delete(url) }
