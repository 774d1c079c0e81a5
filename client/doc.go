// Package client provides a Go client for the pastery.net paste API
// (https://www.pastery.net).
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"patisserie/client"
//	)
//
//	func main() {
//		c := client.New()
//
//		url, err := c.Create(context.Background(), []byte("Hello, World!"), client.CreateOptions{
//			APIKey:   "yourkey",
//			Title:    "greeting",
//			Duration: 1440, // one day, in minutes
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Paste URL:", url)
//	}
//
// # Custom Configuration
//
//	c := client.New(
//		client.WithBaseURL("https://pastery.example.com"),
//		client.WithTimeout(10 * time.Second),
//	)
//
// # Error Handling
//
//	url, err := c.Create(ctx, content, opts)
//	if client.IsRejected(err) {
//		// The service refused the paste; err carries its message.
//	}
//	if client.IsRateLimited(err) {
//		// Too many requests, back off.
//	}
package client
