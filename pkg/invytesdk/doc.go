// Package invytesdk is a Go client for the invyte API and the wire types it
// shares with the server.
//
//	c := invytesdk.NewClient("http://localhost:8080", token)
//	ev, err := c.CreateEvent(ctx, invytesdk.CreateEventRequest{
//		Title:     "Housewarming",
//		Guestlist: []invytesdk.GuestInput{{Name: "Asha", PhoneNumber: "9990001111"}},
//	})
package invytesdk
