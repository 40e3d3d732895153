package main

//retval:mustuse
type config struct{}

func main() {
	_ = config{}
}
