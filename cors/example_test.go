package cors_test

import (
	"fmt"

	"github.com/takehttp/takehttp"
	"github.com/takehttp/takehttp/cors"
	"github.com/takehttp/takehttp/rq"
	"github.com/takehttp/takehttp/rs"
)

func ExampleFilter() {
	hello := takehttp.TakeFunc(func(takehttp.Request) (takehttp.Response, error) {
		return rs.WithBody(rs.Empty(), "hello"), nil
	})
	filter := cors.NewFilter(hello, "http://foo.com")

	res, err := filter.Act(rq.Fake("Origin: http://foo.com"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, line := range res.Head() {
		fmt.Println(line)
	}
	// Output:
	// HTTP/1.1 200 OK
	// Access-Control-Allow-Credentials: true
	// Access-Control-Allow-Methods: OPTIONS, GET, PUT, POST, DELETE, HEAD
	// Access-Control-Allow-Origin: http://foo.com
}

func ExampleFilter_deniedOrigin() {
	hello := takehttp.TakeFunc(func(takehttp.Request) (takehttp.Response, error) {
		return rs.WithBody(rs.Empty(), "hello"), nil
	})
	filter := cors.NewFilter(hello, "http://foo.com")

	res, err := filter.Act(rq.Fake("Origin: http://bar.com"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, line := range res.Head() {
		fmt.Println(line)
	}
	// Output:
	// HTTP/1.1 403 Forbidden
	// Access-Control-Allow-Credentials: false
}
