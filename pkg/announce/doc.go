// Package announce advertises the link's IPv4 address over mDNS.
//
// An Announcer listens on the application event loop under events.Topic.
// When an AddressAcquired event arrives it registers a _ethlink._tcp service
// carrying the address triple in its TXT records. LinkDisconnected and
// LinkStopped withdraw the registration.
//
//	a := announce.New(announce.Config{Instance: "ethlink-01", Key: "ETH"})
//	if err := a.Attach(appLoop); err != nil {
//	    return err
//	}
//	defer a.Detach()
package announce
