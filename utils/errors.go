package utils

import "errors"

var ErrorServer = errors.New("there was a problem processing the request")
var ErrorUuidNotFound = errors.New("the specified uuid was not found")
var ErrorValidationError = errors.New("the data provided was invalid")
var ErrorInvalidCredentials = errors.New("the credentials provided were invalid")
var ErrorUsernameTaken = errors.New("the username is already taken")
var ErrorUnauthorized = errors.New("authentication is required for this action")
var ErrorTokenInvalid = errors.New("the provided session token was invalid")
var ErrorForbidden = errors.New("no permission to perform this action")
var ErrorNotLiteratureOwner = errors.New("only the creator of a literature item can modify it")
var ErrorNotLibraryOwner = errors.New("only the owner of a library can modify it")
var ErrorDuplicateMembership = errors.New("the literature item is already in this library")
var ErrorLibraryNameEmpty = errors.New("the library name must not be empty")
var ErrorInvalidUrl = errors.New("the provided url is not well-formed")
var ErrorInvalidLiteratureType = errors.New("the literature type must be a code between 1 and 5")
var ErrorOpenIDError = errors.New("failed to authenticate with the OpenID provider")
var ErrorOpenIDAuthDisabled = errors.New("OpenID authentication is disabled")
