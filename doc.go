/*
Package takehttp defines a small, composable model of HTTP request
handling in which every building block is an immutable value.

The central abstraction is the [Take]: a capability that converts a
[Request] into a [Response] and may fail. Requests and responses expose
their head as an ordered sequence of raw lines, which keeps the model
close to the wire and makes decoration trivial: a Take wraps another
Take, and a "modified" response is a new value layered over the
original rather than a mutation of it.

The subpackages provide the concrete pieces:

  - [github.com/takehttp/takehttp/rq] constructs request values,
    including in-memory fakes for tests;
  - [github.com/takehttp/takehttp/rs] constructs response values and
    non-destructive response decorators;
  - [github.com/takehttp/takehttp/cors] decorates a Take with
    [Cross-Origin Resource Sharing (CORS)] enforcement against an
    allow-list of origins;
  - [github.com/takehttp/takehttp/hm] provides composable header
    matchers for asserting facts about a request's headers in
    verification code.

Because all values are immutable and takes hold no per-request state,
any take built from these pieces is safe for concurrent use by multiple
goroutines without additional synchronization.

[Cross-Origin Resource Sharing (CORS)]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
*/
package takehttp
