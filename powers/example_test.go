package powers_test

import (
	"fmt"

	"github.com/cwbudde/algo-floatconv/powers"
)

func ExampleLookup() {
	p, err := powers.Lookup(10, 20)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Float, p.Exact, p.Error)
	fmt.Println(p.Float64())

	_, err = powers.Lookup(10, 400)
	fmt.Println(err)

	// Output:
	// 12500000000000000000*2^3 false 4
	// 1e+20
	// powers: exponent not representable: 10^400 outside [-350, 309]
}

func ExampleTable_Power() {
	tab, _ := powers.ForBase(10)
	fmt.Println(tab.Step(), tab.MinExponent(), tab.MaxExponent())

	for _, e := range []int{0, 9, -350} {
		p, _ := tab.Power(e)
		fmt.Printf("10^%d = %v exact=%v\n", e, p.Float, p.Exact)
	}

	// Output:
	// 10 -350 309
	// 10^0 = 9223372036854775808*2^-63 exact=true
	// 10^9 = 17179869184000000000*2^-34 exact=true
	// 10^-350 = 11555125961253852698*2^-1226 exact=false
}

func ExampleTable_SmallInt() {
	tab, _ := powers.ForBase(3)
	v, ok := tab.SmallInt(4)
	fmt.Println(v, ok)

	_, ok = tab.SmallInt(tab.Step())
	fmt.Println(ok)

	// Output:
	// 81 true
	// false
}

func ExampleForBase() {
	_, ok := powers.ForBase(16)
	fmt.Println(ok)

	tab, ok := powers.ForBase(36)
	fmt.Println(ok, tab.Step(), tab.Bias())

	// Output:
	// false
	// true 6 37
}
