package sim

// names returns the customer names in order.
func names(cs []*Customer) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

// equalNames compares name lists, treating nil and empty as equal.
func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// basket returns a customer whose items have the given durations.
func basket(name string, durations ...int) *Customer {
	items := make([]Item, len(durations))
	for i, d := range durations {
		items[i] = MustItem("item", d)
	}
	return NewCustomer(name, items)
}

// uniformBasket returns a customer with n items of duration d each.
func uniformBasket(name string, n, d int) *Customer {
	durations := make([]int, n)
	for i := range durations {
		durations[i] = d
	}
	return basket(name, durations...)
}

// mustStore builds a store or fails the test run.
func mustStore(cfg StoreConfig) *Store {
	s, err := NewStore(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
