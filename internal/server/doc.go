// Package server runs the loopback HTTP listener that receives the OAuth
// callback.
//
// The identity provider redirects the browser to
// http://127.0.0.1:8765/auth/callback?code=... once the user has signed in.
// The listener hands the code (or the provider's error) to the client over
// a channel and answers the browser with a short page telling the user to
// return to the terminal.
package server
