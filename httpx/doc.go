/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx is the HTTP side of the gateway error boundary.
//
// Inbound, it turns failed upstream responses (status >= 400) into
// normalized errors: Classify reads the body, derives the message and the
// context from it and the code from the reason phrase. Transport and
// RestyMiddleware apply the same classification to net/http and resty
// clients.
//
// Outbound, Writer renders normalized errors as a GraphQL-style response
// with a status picked by an apis.Mapper.
package httpx
