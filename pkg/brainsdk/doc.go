/*
Package brainsdk provides a client SDK for the BrainSync API.

# Overview

The package is organised around two types:

  - SDKClient: public endpoints (signup, login, translation history, health)
  - Session: operations that need a signed-in user

Create an SDKClient and sign in:

	client := brainsdk.NewSDKClient("http://localhost:8000")

	session, err := client.AuthenticateWithPassword(ctx, "ada@example.com", "correct-horse")

Record and read translation history:

	tr, err := session.CreateTranslation(ctx, brainsdk.CreateTranslationRequest{
		SourceText:      &text,
		TranslationType: "text",
	})

	recent, err := client.ListTranslations(ctx, brainsdk.ListOptions{Limit: 10, Search: "hello"})

	stats, err := client.GetStats(ctx)

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and the
error code from the response body:

	_, err := client.Login(ctx, req)
	if brainsdk.IsCode(err, brainsdk.ErrorCodeInvalidCredentials) {
		// wrong email or password
	}

The request and response types in this package are also the wire types used
by the server.
*/
package brainsdk
