package internal

const ApplicationName = "gobom"
