// Package client provides a Go client for the scratch short-lived-file
// service (https://kilobytetools.io).
//
// Basic usage:
//
//	c := client.New(
//		client.WithEndpoint("https://dp1.kilobytetools.io"),
//		client.WithAPIKey(apiKey),
//	)
//
//	// Push prints the id as soon as it is reserved, then uploads.
//	resp, err := c.Push(ctx, client.NewBuffer(data), client.PushOptions{}, func(body string) {
//		fmt.Println(strings.TrimSpace(body))
//	})
//
//	// Pull streams the file straight to a writer. An empty id means
//	// "most recently pushed".
//	err = c.Pull(ctx, "", client.PullOptions{}, os.Stdout)
//
// # Two-phase push
//
// Push first reserves an identifier (create), then writes the payload
// under it (upload). The reporter callback fires between the phases: if
// the upload fails, the file already exists server-side and the reported
// id is what lets you retry or clean up. A failure before the reporter
// fires means nothing was created.
//
// # Bootstrap
//
// New accounts obtain credentials with Basic auth against the fixed
// control-plane host:
//
//	res, err := client.New().Bootstrap(ctx, handle, password)
//	// res.APIKey, res.Endpoint
//
// # Error handling
//
// Every failure is classified, never retried:
//
//	_, err := c.List(ctx)
//	if client.IsTransport(err) {
//		// the call never completed
//	}
//	if client.IsServerStatus(err) {
//		// the server said no; the message is the response body
//	}
//	if client.IsContractViolation(err) {
//		// 2xx response with an unusable shape
//	}
package client
