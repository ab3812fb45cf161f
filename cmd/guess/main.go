package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/bezierdraw/pkg/guess"
)

func main() {
	session := guess.NewSession()
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Welcome to Guess the Number! Please enter an integer between %d and %d : ", guess.MinNumber, guess.MaxNumber)

	for !session.Over() {
		input, err := reader.ReadString('\n')
		if err != nil {
			glg.Fatalf("Cannot read input: %v", err)
		}

		input = strings.TrimSpace(input)
		fmt.Println("You entered : " + input)

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println(guess.ErrOutOfRange)
			fmt.Print("Try again : ")

			continue
		}

		var result guess.Result
		result, session, err = session.Guess(n)

		switch {
		case errors.Is(err, guess.ErrOutOfRange):
			fmt.Println(err)
		case err != nil:
			glg.Fatal(err)
		default:
			fmt.Println(result)
		}

		if session.Over() {
			break
		}

		fmt.Printf("Your score is : %d\n", session.Score())
		fmt.Print("Try again : ")
	}

	if session.Lost() {
		fmt.Println("Sorry, you lost!")
	}
}
