package main

import "fmt"

//retval:mustuse
func load(name string) (string, error) {
	return name, nil
}

func main() {
	load("config")

	v, err := load("other")
	fmt.Println(v, err)
}
