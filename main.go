package main

import "github.com/newsdesk/news-backend/cmd"

func main() {
	cmd.Execute()
}
