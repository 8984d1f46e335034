/*
Package clubsdk is a Go client for the clubhouse registration service.

# Usage

	client := clubsdk.NewClient("http://localhost:8080")

	// Landing form: email and password are both required.
	_, err := client.Register(ctx, clubsdk.RegisterRequest{
		Email:    "a@example.com",
		Password: "hunter2",
	})

	// Join API: only the email is required.
	joined, err := client.Join(ctx, clubsdk.JoinRequest{
		Email: "a@example.com",
		Name:  "Alice",
	})
	fmt.Println(joined.Data.Timestamp)

	users, err := client.ListUsers(ctx)

The two write paths use separate key namespaces: an email registered through
Register can still Join, and ListUsers only reports members who joined.

# Error Handling

Non-2xx responses are returned as *APIError. The predefined errors match with
errors.Is:

	_, err := client.Join(ctx, req)
	if errors.Is(err, clubsdk.ErrEmailRegistered) {
		// already a member
	}

The server writes its error responses with the same values, so the messages
stay in step on both sides.
*/
package clubsdk
