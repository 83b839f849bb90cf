package main

import "task-planner.com/task-planner/cmd"

func main() {
	cmd.Execute()
}
