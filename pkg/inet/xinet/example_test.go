package xinet_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xinet/pkg/inet/xinet"
)

func ExampleParseString() {
	v, err := xinet.ParseString("10.1.2.3/8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Octets(), v.Mask, v.Address)
	// Output: [10 1 2 3] 8 50462986
}

func ExampleParseString_error() {
	_, err := xinet.ParseString("1.2.3")
	fmt.Println(err)
	fmt.Println(errors.Is(err, xinet.ErrExpectedDot))
	// Output:
	// Failed to convert string "1.2.3" to inet: Expected a dot
	// true
}

func ExampleValue_Range() {
	v, _ := xinet.ParseString("192.168.1.77/24")
	r, ok := v.Range()
	fmt.Println(r, ok)
	// Output: 192.168.1.0-192.168.1.255 true
}

func ExampleWithLegacyMaskScan() {
	v, _ := xinet.ParseString("1.2.3.4/24", xinet.WithLegacyMaskScan())
	fmt.Println(v.Mask)
	// Output: 4
}
