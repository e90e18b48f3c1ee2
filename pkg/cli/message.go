package cli

import "fmt"

func Errorln(message string) {
	fmt.Println(RedColour + message + Reset)
}

func Successln(message string) {
	fmt.Println(GreenColour + message + Reset)
}

func Warning(message string) {
	fmt.Print(YellowColour + message + Reset)
}

func Warningln(message string) {
	fmt.Println(YellowColour + message + Reset)
}

func Blueln(message string) {
	fmt.Println(BlueColour + message + Reset)
}

func Cyanln(message string) {
	fmt.Println(CyanColour + message + Reset)
}
