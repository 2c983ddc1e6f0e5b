package deepjson

import (
	"fmt"
)

func ExampleDeepCopy() {
	type Address struct {
		Street string `json:"street"`
		City   string `json:"city"`
	}
	type User struct {
		Name    string  `json:"name"`
		Age     int     `json:"age"`
		Address Address `json:"address"`
	}

	user := User{
		Name: "John Doe",
		Age:  30,
		Address: Address{
			Street: "123 Main St",
			City:   "New York",
		},
	}

	// Nested field update on a copy; the original stays untouched.
	moved, err := DeepCopy(user, "address/city", "Boston")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(moved.Address.City)
	fmt.Println(user.Address.City)

	// Output:
	// Boston
	// New York
}

func ExampleDeepCopy_array() {
	tags := []string{"draft", "internal"}

	// A digit segment addresses a zero-based array index.
	updated, err := DeepCopy(tags, "1", "public")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(updated)
	fmt.Println(tags)

	// Output:
	// [draft public]
	// [draft internal]
}

func ExampleDeepCopyWithOptions() {
	numbers := []int{1, 3}

	// Insert before index 1, shifting later elements right.
	inserted, err := DeepCopyWithOptions(numbers, "1", 2, &Options{Mode: InsertAppend})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Remove the element at index 0.
	trimmed, err := DeepCopyWithOptions(inserted, "0", nil, &Options{Mode: Remove})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(inserted)
	fmt.Println(trimmed)

	// Output:
	// [1 2 3]
	// [2 3]
}

func ExampleExtract() {
	type User struct {
		Name    string   `json:"name"`
		Aliases []string `json:"aliases"`
	}

	user := User{Name: "John Doe", Aliases: []string{"jd", "johnny"}}

	alias, err := Extract[string](user, "aliases/1")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(alias)

	// Output:
	// johnny
}
