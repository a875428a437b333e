package main

import "github.com/CourseplayPathEditor/course-generator/cmd/coursegen/cmd"

func main() {
	cmd.Execute()
}
