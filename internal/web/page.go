package web

// pageTemplate is the embedded single-page chat UI. One input, one scrolling
// transcript; everything else goes through the JSON API.
const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Name}}</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 720px; margin: 0 auto; padding: 1rem; background: #1e1f29; color: #e9e9f4; }
  h1 { font-size: 1.3rem; color: #f780ff; }
  p.welcome { color: #8be9fd; }
  #transcript { border: 1px solid #6272a4; border-radius: 6px; padding: 0.75rem; height: 24rem; overflow-y: auto; }
  .turn { margin: 0.5rem 0; white-space: pre-wrap; }
  .turn.user { color: #8be9fd; }
  .turn.assistant { color: #e9e9f4; }
  .turn .who { font-weight: bold; margin-right: 0.4rem; }
  form { display: flex; gap: 0.5rem; margin-top: 0.75rem; }
  input { flex: 1; padding: 0.5rem; border-radius: 6px; border: 1px solid #6272a4; background: #282a36; color: #e9e9f4; }
  button { padding: 0.5rem 1rem; border-radius: 6px; border: none; background: #bd93f9; color: #1e1f29; font-weight: bold; }
  button:disabled { opacity: 0.5; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p class="welcome">Welcome! Ask me about {{.Name}}'s career, background, skills, and experience.</p>
<div id="transcript"></div>
<form id="chat-form">
  <input id="message" autocomplete="off" placeholder="What would you like to ask?">
  <button id="send" type="submit">Send</button>
</form>
<script>
const transcript = document.getElementById("transcript");
const form = document.getElementById("chat-form");
const input = document.getElementById("message");
const send = document.getElementById("send");

function addTurn(role, content) {
  const div = document.createElement("div");
  div.className = "turn " + role;
  const who = document.createElement("span");
  who.className = "who";
  who.textContent = role === "user" ? "You:" : "Assistant:";
  div.appendChild(who);
  div.appendChild(document.createTextNode(content));
  transcript.appendChild(div);
  transcript.scrollTop = transcript.scrollHeight;
}

fetch("/api/history").then(r => r.json()).then(turns => {
  for (const t of turns) addTurn(t.role, t.content);
});

form.addEventListener("submit", async (e) => {
  e.preventDefault();
  const message = input.value.trim();
  if (!message) return;
  input.value = "";
  send.disabled = true;
  addTurn("user", message);
  try {
    const resp = await fetch("/api/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ message }),
    });
    const data = await resp.json();
    addTurn("assistant", data.reply);
  } catch (err) {
    addTurn("assistant", "I'm having trouble connecting right now. Please try again later.");
  } finally {
    send.disabled = false;
    input.focus();
  }
});
</script>
</body>
</html>
`
