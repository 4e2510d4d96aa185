package main

import (
	"fmt"
	"strings"

	"github.com/fernandezvara/passmeter"
)

func main() {
	fmt.Println("Password Strength Examples")
	fmt.Println("==========================")
	fmt.Println()

	// Example 1: Basic usage with the embedded common password list
	fmt.Println("1. Basic Usage (Embedded List)")
	fmt.Println("------------------------------")
	r := passmeter.Evaluate("password")
	fmt.Printf("Password: `password`\n")
	fmt.Printf("Result: Strength=%s, Score=%d\n", r.Strength, r.Score)
	for _, s := range r.Suggestions {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println()

	// Example 2: Custom common password list
	fmt.Println("2. Custom List Usage")
	fmt.Println("--------------------")
	customList := `superman
dragon
monkey
Mangotree7`

	e := passmeter.NewEvaluatorWithDict(customList)
	r = e.Evaluate("Mangotree7")
	fmt.Printf("Password: `Mangotree7`\n")
	fmt.Printf("Result: Strength=%s, Score=%d, Penalties=%v\n", r.Strength, r.Score, r.Penalties)
	fmt.Println()

	// Example 3: Generated password
	fmt.Println("3. Generated Password")
	fmt.Println("---------------------")
	pwd, err := e.Generate(16)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Printf("Password: `%s` (%s)\n", pwd, e.Evaluate(pwd).Strength)
	}
	fmt.Println()

	// Example 4: Comprehensive table
	fmt.Println("4. Comprehensive Scoring Table")
	fmt.Println("==============================")
	fmt.Println()

	fmt.Println("| Password                     | Score | Strength    | Entropy | Why")
	fmt.Println("|------------------------------|-------|-------------|---------|----")

	for _, pw := range []string{
		"password",
		"123456",
		"qwerty",
		"aaaaaaaa",
		"abc12345",
		"helloworld",
		"Mangotree7",
		"Mangotree7!",
		"aB3!",
		"Tr0ub4dor&3XyZ!",
		"Tr0ub4dor&3QwP!",
		"correcthorsebatterystaple",
	} {
		r := passmeter.Evaluate(pw)
		why := "No penalties"
		if len(r.Penalties) > 0 {
			why = strings.Join(r.Penalties, " + ")
		}
		fmt.Printf("| %-28s | %-5d | %-11s | %7.2f | %s\n",
			"`"+pw+"`", r.Score, r.Strength, r.Entropy, why)
	}
}
