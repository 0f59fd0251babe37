package v1

// BasePath is the URL prefix under which all version 1 routes are served.
const BasePath = "/api/v1"
